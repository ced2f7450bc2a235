package console

import (
	"fmt"
	"io"
	"sync"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// printer serialises output from the command loop and asynchronous notices
type printer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

func (p *printer) line(color, prefix, format string, a ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := prefix + fmt.Sprintf(format, a...)
	if p.color && color != "" {
		msg = color + msg + colorReset
	}
	_, _ = fmt.Fprintln(p.out, msg)
}

func (p *printer) Plain(format string, a ...interface{}) { p.line("", "", format, a...) }

func (p *printer) Info(format string, a ...interface{}) { p.line(colorBlue, "ℹ ", format, a...) }

func (p *printer) Success(format string, a ...interface{}) {
	p.line(colorGreen, "✓ ", format, a...)
}

func (p *printer) Warning(format string, a ...interface{}) {
	p.line(colorYellow, "⚠ ", format, a...)
}

func (p *printer) Error(format string, a ...interface{}) { p.line(colorRed, "✗ ", format, a...) }

func (p *printer) Header(title string) {
	p.line(colorYellow, "", "=== %s ===", title)
}

func (p *printer) Prompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, Prompt)
}
