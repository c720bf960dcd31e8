package model

const (
	StatusPending    = "pending"
	StatusSettlement = "settlement"
	StatusFailed     = "failed"
)

// TerminalStatuses status yang tidak boleh berubah lagi.
var TerminalStatuses = []string{StatusSettlement, StatusFailed}

// MapGatewayStatus memetakan transaction_status Midtrans ke status lokal.
// settlement → settlement; cancel/deny/expire → failed; selain itu disimpan apa adanya.
// Case-sensitive.
func MapGatewayStatus(raw string) string {
	switch raw {
	case "settlement":
		return StatusSettlement
	case "cancel", "deny", "expire":
		return StatusFailed
	default:
		return raw
	}
}

func IsTerminal(status string) bool {
	return status == StatusSettlement || status == StatusFailed
}
