package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/notation/epin"
	"github.com/notation/pin"
	"github.com/notation/pnn"
	"github.com/notation/sin"
	"github.com/notation/snn"
)

// Report describes one token. Fields that do not apply to the notation
// are left empty.
type Report struct {
	Input    string `json:"input" yaml:"input"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	BaseName string `json:"base_name,omitempty" yaml:"base_name,omitempty"`
	Side     string `json:"side,omitempty" yaml:"side,omitempty"`
	State    string `json:"state,omitempty" yaml:"state,omitempty"`
	Native   *bool  `json:"native,omitempty" yaml:"native,omitempty"`
	Terminal *bool  `json:"terminal,omitempty" yaml:"terminal,omitempty"`

	Components *epin.Components `json:"components,omitempty" yaml:"components,omitempty"`
}

func describe(notation, token string) Report {
	r := Report{Input: token}
	var err error
	switch notation {
	case "pin":
		var id pin.Identifier
		if id, err = pin.Parse(token); err == nil {
			r.Type, r.Side, r.State = id.Type().String(), id.Side().String(), id.State().String()
		}
	case "epin":
		var id epin.Identifier
		if id, err = epin.Parse(token); err == nil {
			native := id.Native()
			c := id.Components()
			r.Type, r.Side, r.State = id.Type().String(), id.Side().String(), id.State().String()
			r.Native, r.Components = &native, &c
		}
	case "pnn":
		var n pnn.Name
		if n, err = pnn.Parse(token); err == nil {
			terminal := n.Terminal()
			r.BaseName, r.Side, r.State = n.BaseName(), n.Side().String(), n.State().String()
			r.Terminal = &terminal
		}
	case "snn":
		var n snn.Name
		if n, err = snn.Parse(token); err == nil {
			r.Name = n.String()
		}
	case "sin":
		var id sin.Identifier
		if id, err = sin.Parse(token); err == nil {
			r.Name, r.Side = id.Name().String(), id.Side().String()
		}
	default:
		err = errors.Errorf("unknown notation %q", notation)
	}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Valid = true
	return r
}

func writeReports(w io.Writer, output string, reports []Report) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(reports))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	}
	var buf bytes.Buffer
	for _, r := range reports {
		buf.WriteString(textLine(r))
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return errors.WithStack(err)
}

func textLine(r Report) string {
	if !r.Valid {
		return fmt.Sprintf("%-10s invalid: %s", r.Input, r.Error)
	}
	var fields []string
	add := func(k, v string) {
		if v != "" {
			fields = append(fields, k+"="+v)
		}
	}
	add("type", r.Type)
	add("name", r.Name)
	add("base", r.BaseName)
	add("side", r.Side)
	add("state", r.State)
	if r.Native != nil {
		add("native", fmt.Sprint(*r.Native))
	}
	if r.Terminal != nil {
		add("terminal", fmt.Sprint(*r.Terminal))
	}
	return fmt.Sprintf("%-10s %s", r.Input, strings.Join(fields, " "))
}
