package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/scinot/decimal"
	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
	"github.com/calebcase/scinot/scidata"
	"github.com/calebcase/scinot/sigfig"
)

type sigfigView struct {
	Text     string  `json:"text"`
	Value    float64 `json:"value"`
	Sigfigs  int     `json:"sigfigs"`
	Exponent int     `json:"exponent"`
	Place    int     `json:"place"`
}

func newSigfigView(s sigfig.SigFig) *sigfigView {
	return &sigfigView{
		Text:     s.String(),
		Value:    s.Value,
		Sigfigs:  s.Sigfigs,
		Exponent: s.Exponent,
		Place:    s.Place(),
	}
}

type sciDataView struct {
	Input  string      `json:"input"`
	Text   string      `json:"text"`
	Exact  bool        `json:"exact"`
	Value  *sigfigView `json:"value"`
	Unc    *sigfigView `json:"unc,omitempty"`
	RelUnc *sigfigView `json:"rel_unc,omitempty"`
}

func newSciDataView(input string, d scidata.SciData) *sciDataView {
	v := &sciDataView{
		Input: input,
		Text:  d.String(),
		Exact: d.Exact,
		Value: newSigfigView(d.Value),
	}

	if d.Unc != nil {
		v.Unc = newSigfigView(*d.Unc)
	}

	if d.RelUnc != nil {
		v.RelUnc = newSigfigView(*d.RelUnc)
	}

	return v
}

// printJSON writes v as a single line of JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return oops.Trace(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// report applies the configured warnings policy.
func report(warnings ...*decimal.PrecisionWarning) error {
	for _, w := range warnings {
		if w == nil {
			continue
		}

		switch cfg.Warnings {
		case config.WarningsError:
			return oops.Trace(w)
		case config.WarningsIgnore:
			logger.Debug("ignored %v", w)
		default:
			logger.Warn("%v", w)
		}
	}

	return nil
}
