package broker

// Subjects follow "<entity>.<operation>", matching the event names stored in
// the outbox ("note.created", "tag.deleted", ...).
const (
	UserSubjects   = "user.*"
	FolderSubjects = "folder.*"
	NoteSubjects   = "note.*"
	TagSubjects    = "tag.*"
)

// EntitySubjects lists everything the websocket feed subscribes to.
var EntitySubjects = []string{
	UserSubjects,
	FolderSubjects,
	NoteSubjects,
	TagSubjects,
}
