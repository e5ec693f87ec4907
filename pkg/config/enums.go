package config

// ActionPolicy is the operator switch that gates automatic remediation.
// It is read at decision time for every event, so flipping it applies to
// everything that has not yet passed the remediation gate.
type ActionPolicy string

const (
	// PolicyOff disables remediation and remediation-driven notifications.
	PolicyOff ActionPolicy = "OFF"
	// PolicyNotifyOnly records and notifies but never touches infrastructure.
	PolicyNotifyOnly ActionPolicy = "NOTIFY_ONLY"
	// PolicyFull allows the effector to execute configured actions.
	PolicyFull ActionPolicy = "FULL"
)

// IsValid checks if the action policy is valid
func (p ActionPolicy) IsValid() bool {
	return p == PolicyOff || p == PolicyNotifyOnly || p == PolicyFull
}

// ActionKind names an effector capability.
type ActionKind string

const (
	// ActionDisableCredential disables the IAM credential named by the finding
	ActionDisableCredential ActionKind = "DISABLE_CREDENTIAL"
	// ActionRevokeNetworkIngress removes the offending ingress rule
	ActionRevokeNetworkIngress ActionKind = "REVOKE_NETWORK_INGRESS"
	// ActionQuarantineInstance moves the instance into an isolation security group
	ActionQuarantineInstance ActionKind = "QUARANTINE_INSTANCE"
	// ActionRotateSecret rotates the secret referenced by the finding
	ActionRotateSecret ActionKind = "ROTATE_SECRET"
	// ActionBlockAddress blocks the remote address at the network boundary
	ActionBlockAddress ActionKind = "BLOCK_ADDRESS"
	// ActionNone records that no remediation is configured for the finding
	ActionNone ActionKind = "NONE"
)

// IsValid checks if the action kind is valid
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionDisableCredential,
		ActionRevokeNetworkIngress,
		ActionQuarantineInstance,
		ActionRotateSecret,
		ActionBlockAddress,
		ActionNone:
		return true
	default:
		return false
	}
}

// Mutating reports whether the action changes customer infrastructure.
func (k ActionKind) Mutating() bool {
	return k.IsValid() && k != ActionNone
}
