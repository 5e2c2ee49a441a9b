package utils

// Notice messages. The English text doubles as the catalog key.
const (
	MsgLoadFailed   = "Failed to load tasks."
	MsgCreated      = "Task created."
	MsgCreateFailed = "Failed to create task."
	MsgCompleted    = "Task completed."
	MsgReopened     = "Task reopened."
	MsgToggleFailed = "Failed to update task."
	MsgDeleted      = "Task deleted."
	MsgDeleteFailed = "Failed to delete task."

	LabelReload = "Reload"
)

// Screen chrome.
const (
	TextHeading          = "My Tasks"
	TextTitlePlaceholder = "Enter the task title"
	TextDescPlaceholder  = "Enter the task description"
	TextAdd              = "Add"
	TextFilterAll        = "ALL"
	TextFilterPending    = "PENDING"
	TextFilterCompleted  = "COMPLETED"
	TextEmpty            = "No tasks."
	TextLoading          = "Loading..."
	TextTaskCount        = "%d task(s)"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"
