package service

// LoadStatus tracks the last load of a panel.
type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadLoading
	// LoadError means the last load failed; the working state was kept.
	LoadError
)

func (s LoadStatus) String() string {
	switch s {
	case LoadLoading:
		return "loading"
	case LoadError:
		return "error"
	default:
		return "idle"
	}
}

// SaveStatus tracks the save protocol: Idle -> Saving -> Saved|Failed -> Idle.
type SaveStatus int

const (
	SaveIdle SaveStatus = iota
	SaveSaving
	SaveSaved
	SaveFailed
)

// inFlight reports a save that has not settled yet, including the reload
// that follows a successful write.
func (s SaveStatus) inFlight() bool {
	return s == SaveSaving || s == SaveSaved
}

func (s SaveStatus) String() string {
	switch s {
	case SaveSaving:
		return "saving"
	case SaveSaved:
		return "saved"
	case SaveFailed:
		return "failed"
	default:
		return "idle"
	}
}

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is the message left by the last save or reset.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// PanelState is the whole observable state of one configuration panel.
type PanelState[M any] struct {
	Config M
	Load   LoadStatus
	Save   SaveStatus
	Notice Notice
}

// ActionKind enumerates the transitions of a panel.
type ActionKind int

const (
	ActionLoadStarted ActionKind = iota
	// ActionLoadSucceeded replaces Config when Found is set and no write is
	// waiting for its answer, else keeps it.
	ActionLoadSucceeded
	ActionLoadFailed
	// ActionEdited replaces Config with an already patched model.
	ActionEdited
	ActionSaveStarted
	ActionSaveSucceeded
	ActionSaveFailed
	// ActionSaveSettled closes the save protocol and returns to SaveIdle.
	ActionSaveSettled
	ActionNoticeDismissed
)

// Action is one input to [Reduce].
type Action[M any] struct {
	Kind    ActionKind
	Config  M
	Found   bool
	Message string
}

// Reduce returns the state that follows s after a. It is pure: no I/O and
// no mutation of s.
func Reduce[M any](s PanelState[M], a Action[M]) PanelState[M] {
	switch a.Kind {
	case ActionLoadStarted:
		s.Load = LoadLoading

	case ActionLoadSucceeded:
		// the working copy being written stays put until the write answers
		if a.Found && s.Save != SaveSaving {
			s.Config = a.Config
		}
		s.Load = LoadIdle

	case ActionLoadFailed:
		s.Load = LoadError

	case ActionEdited:
		// the snapshot being saved is read-only
		if !s.Save.inFlight() {
			s.Config = a.Config
		}

	case ActionSaveStarted:
		if !s.Save.inFlight() {
			s.Save = SaveSaving
			s.Notice = Notice{}
		}

	case ActionSaveSucceeded:
		s.Save = SaveSaved
		s.Notice = Notice{Kind: NoticeSuccess, Message: a.Message}

	case ActionSaveFailed:
		s.Save = SaveFailed
		s.Notice = Notice{Kind: NoticeError, Message: a.Message}

	case ActionSaveSettled:
		s.Save = SaveIdle

	case ActionNoticeDismissed:
		s.Notice = Notice{}
	}
	return s
}
