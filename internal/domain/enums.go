package domain

// Signal identifies one category of telemetry.
type Signal string

const (
	SignalConsent  Signal = "consent"
	SignalLocation Signal = "location"
	SignalCalls    Signal = "calls"
	SignalIP       Signal = "ip"
)

func (s Signal) String() string { return string(s) }

func (s Signal) IsValid() bool {
	switch s {
	case SignalConsent, SignalLocation, SignalCalls, SignalIP:
		return true
	}
	return false
}
