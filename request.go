package pycommander

// NodeRequestor is implemented by all node create request types
type NodeRequestor interface {
	GetType() NodeCreateRequestType
	GetPath() string
}

// NodeRequest has common fields embedded in concrete request types.
// Path is relative to home unless it starts with "~/" or "/".
type NodeRequest struct {
	Path string
	Type NodeCreateRequestType
}

func (r *NodeRequest) GetType() NodeCreateRequestType { return r.Type }
func (r *NodeRequest) GetPath() string                { return r.Path }

// NodeCreateRequestType valid types are FileNodeType "file", DirNodeType "dir"
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

// FileCreateRequest seeds a file with fixed content. Files only ever come
// into existence through seeding; no shell command creates them.
type FileCreateRequest struct {
	NodeRequest
	Content string
}

type DirCreateRequest struct {
	NodeRequest
}

// CommandRequest is one command line submitted by a terminal client.
// The client owns Cwd and sends it back on every call.
type CommandRequest struct {
	Command   string `json:"command"`
	Cwd       string `json:"cwd"`
	SessionID string `json:"sessionId,omitempty"`
}

// CommandResponse mirrors what the terminal UI renders. At most one of
// Output and Error is set.
type CommandResponse struct {
	Output    *string `json:"output,omitempty"`
	Error     string  `json:"error,omitempty"`
	NewCwd    string  `json:"newCwd,omitempty"`
	Clear     bool    `json:"clear,omitempty"`
	AICommand string  `json:"aiCommand,omitempty"`
}

// TranslateRequest asks for a command line matching a natural language prompt
type TranslateRequest struct {
	Prompt string `json:"prompt"`
}

type TranslateResponse struct {
	Command string `json:"command,omitempty"`
	Error   string `json:"error,omitempty"`
}
