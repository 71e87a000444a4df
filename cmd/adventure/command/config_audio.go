package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/audio"
	"github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"
)

type AudioConfig struct {
	Volume *float64 `json:"volume"`
	Step   *float64 `json:"step"`
}

func (c *AudioConfig) validate() error {
	el := errors.NewErrorList()
	if c.Volume != nil && (*c.Volume < 0 || *c.Volume > 1) {
		el.Add(fmt.Errorf("audio: volume must be between 0 and 1"))
	}
	if c.Step != nil && (*c.Step <= 0 || *c.Step > 1) {
		el.Add(fmt.Errorf("audio: step must be above 0 and at most 1"))
	}
	return el.Err()
}

func (c *AudioConfig) BuildController(log logrus.FieldLogger) audio.Controller {
	volume, step := audio.DefaultVolume, audio.DefaultStep
	if c.Volume != nil {
		volume = *c.Volume
	}
	if c.Step != nil {
		step = *c.Step
	}
	return audio.NewMixer(volume, step, log)
}
