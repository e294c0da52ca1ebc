package gmail

const (
	LogPrefix = "internal.connector.gmail"

	Name = "Gmail"

	DefaultLimit = 5

	gmailDateLayout = "2006/01/02"
)
