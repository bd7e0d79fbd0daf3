package render

import (
	"context"
	"testing"

	"github.com/matzehuels/netforest/pkg/errors"
)

func TestMissingConverter(t *testing.T) {
	old := rsvgPath
	rsvgPath = "netforest-no-such-converter"
	defer func() { rsvgPath = old }()

	ctx := context.Background()
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)

	if _, err := ToPDF(ctx, svg); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %v", err, errors.ErrCodeUnsupported)
	}
	if _, err := ToPNG(ctx, svg, 2.0); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want %v", err, errors.ErrCodeUnsupported)
	}
}

func TestToPNGRejectsScale(t *testing.T) {
	_, err := ToPNG(context.Background(), nil, 0)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ToPNG(scale 0) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}
