package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title    string
	disabled bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithoutSpinner runs the action without animation, e.g. when its output
// is streamed to the terminal.
func WithoutSpinner(disabled bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.disabled = disabled
	}
}

// RunWithSpinner executes a blocking action while a spinner is shown.
// Off a TTY the action runs directly. The action receives ctx and should
// honor its cancellation.
func RunWithSpinner(ctx context.Context, action func(context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.disabled || !IsTTY() {
		return action(ctx)
	}

	actionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var actionErr error
	done := make(chan struct{})
	go func() {
		actionErr = action(actionCtx)
		close(done)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Action(func() {
			<-done
		}).
		Run()

	if spinnerErr != nil {
		// Interrupted from the keyboard: stop the action and wait for it.
		cancel()
		<-done
		if actionErr != nil {
			return actionErr
		}
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	<-done
	return actionErr
}
