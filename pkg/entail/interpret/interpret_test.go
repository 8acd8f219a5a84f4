package interpret

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("lime"); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("unknown kind: got %v", err)
	}
}

func TestDecode(t *testing.T) {
	body := []byte(`{
		"integrated_gradient": {
			"instance_1": {"grad_input_1": [0.1, 0.9], "grad_input_2": [0.3, 0.2, 0.5]}
		}
	}`)

	res, err := Decode(IntegratedGradient, body)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if res.Kind != IntegratedGradient {
		t.Errorf("kind = %s", res.Kind)
	}
	if !reflect.DeepEqual(res.Hypothesis(), []float64{0.1, 0.9}) {
		t.Errorf("hypothesis grads = %v", res.Hypothesis())
	}
	if !reflect.DeepEqual(res.Premise(), []float64{0.3, 0.2, 0.5}) {
		t.Errorf("premise grads = %v", res.Premise())
	}
	if res.Empty() {
		t.Error("result should not be empty")
	}
}

func TestDecodeSelectsRequestedKind(t *testing.T) {
	body := []byte(`{
		"simple_gradient": {"instance_1": {"grad_input_1": [1], "grad_input_2": [2]}},
		"smooth_gradient": {"instance_1": {"grad_input_1": [3], "grad_input_2": [4]}}
	}`)

	res, err := Decode(SmoothGradient, body)
	if err != nil {
		t.Fatal(err)
	}
	if res.GradInput1[0] != 3 || res.GradInput2[0] != 4 {
		t.Errorf("picked wrong interpreter: %+v", res)
	}
}

func TestDecodeMissingKind(t *testing.T) {
	body := []byte(`{"simple_gradient": {"instance_1": {"grad_input_1": [1], "grad_input_2": [2]}}}`)
	if _, err := Decode(IntegratedGradient, body); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("missing kind: got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(SimpleGradient, []byte(`{not json`)); err == nil {
		t.Error("expected decode error")
	}
	if _, err := Decode("gradcam", []byte(`{}`)); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("unknown kind: got %v", err)
	}
}

func TestEmpty(t *testing.T) {
	if !(Result{}).Empty() {
		t.Error("zero Result should be empty")
	}
}
