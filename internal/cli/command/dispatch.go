package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sigmesh-go/internal/cli/output"
	"github.com/yndnr/sigmesh-go/internal/core/domain"
)

// actionTimeout bounds one single-command dispatch.
const actionTimeout = 30 * time.Second

// dispatchResult is the printable outcome of one operation.
type dispatchResult struct {
	Operation string `json:"operation" yaml:"operation"`
	Outcome   string `json:"outcome" yaml:"outcome"`
	Status    int    `json:"status,omitempty" yaml:"status,omitempty"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// runOperation dispatches one operation and prints its outcome. A
// rejected request is reported, not returned as an error; only local
// failures (config, parsing) abort the command.
func runOperation(c *cli.Context, op domain.Operation) error {
	client, _, flags, err := buildClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, actionTimeout)
	defer cancel()

	outcome := client.Dispatch(ctx, op)

	result := dispatchResult{
		Operation: op.Kind.String(),
		Status:    outcome.Status,
	}
	switch {
	case outcome.Err != nil:
		result.Outcome = "failed"
	case outcome.Accepted:
		result.Outcome = "accepted"
	default:
		result.Outcome = "rejected"
	}
	if derr := outcome.AsError(); derr != nil {
		result.Code = domain.CodeOf(derr)
		result.Error = derr.Error()
	}

	return output.NewFormatter(output.Format(flags.Output)).Format(c.App.Writer, result)
}
