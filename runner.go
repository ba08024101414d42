package wheelie

import (
	"encoding/json"
	"fmt"
	"strings"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string   `json:"action"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Amount float64  `json:"amount,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Mods   []string `json:"mods,omitempty"`

	mods KeyModifiers
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner sequences injected gestures across frames, for automated
// testing of a screen's dispatch. Attach to a Screen via SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a runner ready
// to be attached to a Screen via SetGestureRunner.
//
//	{"steps": [
//	  {"action": "click", "x": 10, "y": 10, "mods": ["ctrl", "shift"]},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 170, "toY": 10, "frames": 3, "mods": ["shift"]},
//	  {"action": "scroll", "x": 10, "y": 10, "amount": -1},
//	  {"action": "sort", "x": 10, "y": 10},
//	  {"action": "wait", "frames": 2}
//	]}
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("wheelie: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("wheelie: parse gesture script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "click", "drag", "scroll", "sort", "wait":
		default:
			return nil, fmt.Errorf("wheelie: parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		mods, err := ParseModifiers(st.Mods)
		if err != nil {
			return nil, fmt.Errorf("wheelie: parse gesture script: step %d: %w", i, err)
		}
		st.mods = mods
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// ParseModifiers converts modifier names ("shift", "ctrl"/"control",
// "alt", "meta") to a KeyModifiers set.
func ParseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "meta":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return mods, nil
}

// SetGestureRunner attaches a runner to the screen. The runner's step method
// is called from Screen.Update before input is processed each frame.
func (s *Screen) SetGestureRunner(runner *GestureRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Screen.Update.
func (r *GestureRunner) step(s *Screen) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y, st.mods)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, st.mods)
	case "scroll":
		amount := st.Amount
		if amount == 0 {
			amount = -1
		}
		s.InjectScroll(st.X, st.Y, amount, st.mods)
	case "sort":
		s.InjectMiddleClick(st.X, st.Y, st.mods)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
