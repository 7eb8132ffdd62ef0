package packet

// Chat sends a message to the chat or the action bar.
type Chat struct {
	Message  string       `yaml:"message"`
	Position ChatPosition `yaml:"position,omitempty"`
}

// ChatPosition is where a chat message is displayed.
type ChatPosition int

const (
	PositionChat ChatPosition = iota
	PositionSystem
	PositionActionBar
)

var chatPositionNames = []string{"chat", "system", "action_bar"}

func (p ChatPosition) String() string               { return enumString(chatPositionNames, p) }
func (p ChatPosition) Valid() bool                  { return valid(chatPositionNames, p) }
func (p ChatPosition) MarshalText() ([]byte, error) { return enumMarshal(chatPositionNames, p) }
func (p *ChatPosition) UnmarshalText(text []byte) error {
	return enumUnmarshal(chatPositionNames, text, p, "chat position")
}

// HeaderFooter sets the text above and below the player list.
type HeaderFooter struct {
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
}
