package bubblechart

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action of a test script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
	Position float64 `json:"position,omitempty"`
	Shift    bool    `json:"shift,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure of a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, playback control and screenshots
// across frames for automated visual testing. Attach it with SetTestRunner.
//
// Actions: click, hover, drag, wheel, position, play, pause, wait and
// screenshot. Pointer actions honor "shift".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "click", "hover", "drag", "wheel", "position", "play", "pause", "wait", "screenshot":
		return true
	}
	return false
}

// SetTestRunner attaches a runner. Its step runs in Update before input is
// processed.
func (c *Chart) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether every step ran.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(c *Chart) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
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

	mods := KeyModifiers(0)
	if st.Shift {
		mods = ModShift
	}
	c.InjectModifiers(mods)

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "hover":
		c.InjectHover(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.Delta)
	case "position":
		c.Slider.Pause()
		c.Slider.SetPosition(st.Position)
	case "play":
		c.Slider.Play(c.Slider.playDuration())
	case "pause":
		c.Slider.Pause()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
