package portal

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
)

// Toast is the transient notification shown after an action
type Toast struct {
	Message string
	Kind    ToastKind
}

// orDefault prefers the server's message and falls back to the client text
func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
