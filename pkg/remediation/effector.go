// Package remediation maps findings to response actions and drives the
// effector that applies them. The action table is operator policy from
// config; the executor only ever runs what the table names.
package remediation

import (
	"context"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

// Effector applies one remediation action to infrastructure.
//
// Implementations MUST be idempotent on (event_id, action): the pipeline
// delivers at-least-once and retries failed attempts, so the same pair can
// arrive more than once and must converge on the same end state.
type Effector interface {
	Apply(ctx context.Context, threat *models.Threat, action config.ActionKind) error
}
