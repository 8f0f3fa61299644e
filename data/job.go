package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/vdobler/funcplot/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyBlock is returned for a code block without any expression.
var ErrEmptyBlock = errors.New("data: no expression in block")

// ExprError reports an expression which cannot be compiled.
type ExprError struct {
	Line int // 1-based index among the block's expressions
	Expr string
	Err  error
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("data: expression %d %q: %v", e.Line, e.Expr, e.Err)
}

func (e *ExprError) Unwrap() error { return e.Err }

// Option configures sampling.
type Option func(*options)

type options struct {
	domain  Domain
	compile Compiler
}

// WithDomain samples over d instead of DefaultDomain.
func WithDomain(d Domain) Option {
	return func(o *options) { o.domain = d }
}

// WithCompiler replaces the default Compile.
func WithCompiler(c Compiler) Option {
	return func(o *options) { o.compile = c }
}

// SampleBlock compiles every expression of block and samples them over the
// domain. Any compile failure fails the whole block. Curves are returned in
// block order; curve i has Color i.
func SampleBlock(ctx context.Context, block string, opts ...Option) ([]Curve, error) {
	o := options{domain: DefaultDomain, compile: Compile}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.domain.valid() {
		return nil, fmt.Errorf("data: invalid domain [%g, %g] with %d points",
			o.domain.Min, o.domain.Max, o.domain.N)
	}

	exprs := ParseBlock(block)
	if len(exprs) == 0 {
		return nil, ErrEmptyBlock
	}
	funcs := make([]Func, len(exprs))
	for i, src := range exprs {
		f, err := o.compile(src)
		if err != nil {
			return nil, &ExprError{Line: i + 1, Expr: src, Err: err}
		}
		funcs[i] = f
	}

	log := logging.Logger()
	curves := make([]Curve, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range funcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			xy, dropped := Sample(funcs[i], o.domain)
			curves[i] = Curve{Expr: exprs[i], Color: i, Samples: xy}
			log.Debug("sampled expression",
				zap.String("expr", exprs[i]),
				zap.Int("kept", len(xy)),
				zap.Int("dropped", dropped))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}

// ----------------------------------------------------------------------------
// Job

// A Job samples a code block in the background. Its result is published
// exactly once; Done is closed afterwards.
type Job struct {
	done   chan struct{}
	curves []Curve
	err    error
}

// Start starts sampling block on a new goroutine.
func Start(ctx context.Context, block string, opts ...Option) *Job {
	j := &Job{done: make(chan struct{})}
	go func() {
		defer close(j.done)
		j.curves, j.err = SampleBlock(ctx, block, opts...)
		if j.err != nil {
			logging.Logger().Debug("sampling failed", zap.Error(j.err))
			return
		}
		logging.Logger().Info("sampling finished", zap.Int("curves", len(j.curves)))
	}()
	return j
}

// Completed returns a Job which is already done with the given result.
func Completed(curves []Curve, err error) *Job {
	j := &Job{done: make(chan struct{}), curves: curves, err: err}
	close(j.done)
	return j
}

// Done returns a channel which is closed once the result is available.
func (j *Job) Done() <-chan struct{} { return j.done }

// Result waits for the job and returns its curves or the error which
// prevented sampling.
func (j *Job) Result() ([]Curve, error) {
	<-j.done
	return j.curves, j.err
}

// Wait is like Result but gives up when ctx is done.
func (j *Job) Wait(ctx context.Context) ([]Curve, error) {
	select {
	case <-j.done:
		return j.curves, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
