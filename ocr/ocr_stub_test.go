//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsNotEnabled(t *testing.T) {
	client, err := New("eng")
	if err == nil {
		t.Error("expected error from New when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when OCR is disabled")
	}
}

func TestEnabledReportsFalse(t *testing.T) {
	if Enabled {
		t.Error("stub build must report Enabled == false")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestStubOperationsFail(t *testing.T) {
	client := &Client{}
	if _, err := client.Recognize([]byte("png")); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Recognize: expected ErrOCRNotEnabled, got: %v", err)
	}
	if err := client.SetDPI(150); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetDPI: expected ErrOCRNotEnabled, got: %v", err)
	}
}
