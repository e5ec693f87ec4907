// Package events publishes threat lifecycle events to a Redis Stream so
// dashboards and SIEM forwarders can tail terminal transitions without
// polling the read API. Publishing is fail-open: a down broker costs
// entries on the stream, never pipeline progress.
package events

import "github.com/argus-soc/argus/pkg/models"

// Kind names one lifecycle transition on the stream.
type Kind string

const (
	KindStored       Kind = "threat.stored"
	KindNotified     Kind = "threat.notified"
	KindRemediated   Kind = "threat.remediated"
	KindDeadLettered Kind = "threat.dead_lettered"
)

// KindForStatus maps a terminal threat status to its stream kind. The
// second return is false for statuses that do not produce an event.
func KindForStatus(status models.ThreatStatus) (Kind, bool) {
	switch status {
	case models.StatusStoredOnly:
		return KindStored, true
	case models.StatusNotified:
		return KindNotified, true
	case models.StatusRemediated:
		return KindRemediated, true
	case models.StatusDeadLettered:
		return KindDeadLettered, true
	default:
		return "", false
	}
}
