package replay

import "github.com/younwookim/hero/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records the player intent for a single tick
type FrameInput struct {
	F   int  `json:"f"`             // Tick number
	MX  int  `json:"mx,omitempty"`  // MoveX
	J   bool `json:"j,omitempty"`   // Jump
	Dsh bool `json:"dsh,omitempty"` // Dash
	A   bool `json:"a,omitempty"`   // Attack
	Rg  bool `json:"rg,omitempty"`  // Regen (drink potion)
}

// NewFrameInput converts a tick's input into its recorded form
func NewFrameInput(f int, in system.Input) FrameInput {
	return FrameInput{
		F:   f,
		MX:  in.MoveX,
		J:   in.Jump,
		Dsh: in.Dash,
		A:   in.Attack,
		Rg:  in.Regen,
	}
}

// Input returns the recorded intent
func (fi FrameInput) Input() system.Input {
	return system.Input{
		MoveX:  fi.MX,
		Jump:   fi.J,
		Dash:   fi.Dsh,
		Attack: fi.A,
		Regen:  fi.Rg,
	}
}

// ReplayData contains all data needed to replay a level run.
// The wallet fields hold the currency the run started with.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	Coins     int          `json:"coins"`
	Potions   int          `json:"potions"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
