package launch

import "strconv"

// DefaultSliderStep is the payload slider step in kilograms.
const DefaultSliderStep = 1000

// SliderConfig describes the payload range control.
type SliderConfig struct {
	Min   int            `json:"min"`
	Max   int            `json:"max"`
	Step  int            `json:"step"`
	Value [2]int         `json:"value"`
	Marks map[int]string `json:"marks"`
}

// NewSliderConfig derives the slider from the dataset's payload bounds. The
// control always starts at zero; its initial value spans the observed payloads.
func NewSliderConfig(ds *Dataset, step int) SliderConfig {
	if step <= 0 {
		step = DefaultSliderStep
	}
	lo, hi, ok := ds.PayloadBounds()
	if !ok {
		return SliderConfig{Step: step, Marks: SliderMarks(0, step)}
	}
	minPayload := int(lo)
	maxPayload := int(hi)
	return SliderConfig{
		Min:   0,
		Max:   maxPayload,
		Step:  step,
		Value: [2]int{minPayload, maxPayload},
		Marks: SliderMarks(maxPayload, step),
	}
}

// SliderMarks returns tick labels at every step from 0 up to and including max.
func SliderMarks(max, step int) map[int]string {
	marks := make(map[int]string)
	if step <= 0 || max < 0 {
		return marks
	}
	for i := 0; i <= max; i += step {
		marks[i] = strconv.Itoa(i)
	}
	return marks
}

// Range returns the slider's initial value as a payload range.
func (c SliderConfig) Range() PayloadRange {
	return PayloadRange{Lower: float64(c.Value[0]), Upper: float64(c.Value[1])}
}
