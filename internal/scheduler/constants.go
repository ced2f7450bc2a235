package scheduler

const LogMsgInvalidInterval = "Ignoring job with non-positive interval"
