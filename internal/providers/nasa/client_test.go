package nasa

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleOEM = `<?xml version="1.0" encoding="UTF-8"?>
<ndm xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <oem id="CCSDS_OEM_VERS" version="2.0">
    <header>
      <CREATION_DATE>2024-080T04:05:10.110Z</CREATION_DATE>
      <ORIGINATOR>JSC</ORIGINATOR>
    </header>
    <body>
      <segment>
        <metadata>
          <OBJECT_NAME>ISS</OBJECT_NAME>
          <OBJECT_ID>1998-067-A</OBJECT_ID>
          <CENTER_NAME>EARTH</CENTER_NAME>
          <REF_FRAME>EME2000</REF_FRAME>
          <TIME_SYSTEM>UTC</TIME_SYSTEM>
          <START_TIME>2024-079T00:00:00.000Z</START_TIME>
          <STOP_TIME>2024-094T00:00:00.000Z</STOP_TIME>
        </metadata>
        <data>
          <COMMENT>Units are in kg and m^2</COMMENT>
          <COMMENT>RATE_X = 0.0 deg/s</COMMENT>
          <stateVector>
            <EPOCH>2024-079T00:52:00.000Z</EPOCH>
            <X units="km">1255.1</X>
            <Y units="km">5042.2</Y>
            <Z units="km">4382.3</Z>
            <X_DOT units="km/s">-5.6</X_DOT>
            <Y_DOT units="km/s">-1.9</Y_DOT>
            <Z_DOT units="km/s">3.8</Z_DOT>
          </stateVector>
          <stateVector>
            <EPOCH>2024-079T00:56:00.000Z</EPOCH>
            <X units="km">719.875689675049</X>
            <Y units="km">5211.35844946617</Y>
            <Z units="km">4294.87217744873</Z>
            <X_DOT units="km/s">-5.7</X_DOT>
            <Y_DOT units="km/s">-1.5</Y_DOT>
            <Z_DOT units="km/s">4.1</Z_DOT>
          </stateVector>
          <stateVector>
            <EPOCH>2024-079T01:00:00.000Z</EPOCH>
            <X units="km">not-a-number</X>
            <Y units="km">5300.0</Y>
            <Z units="km">4200.0</Z>
            <X_DOT units="km/s">-5.8</X_DOT>
            <Y_DOT units="km/s">-1.1</Y_DOT>
            <Z_DOT units="km/s">4.4</Z_DOT>
          </stateVector>
          <stateVector>
            <EPOCH>2024-079T01:04:00.000Z</EPOCH>
            <Y units="km">5400.0</Y>
            <Z units="km">4100.0</Z>
            <X_DOT units="km/s">-5.9</X_DOT>
            <Y_DOT units="km/s">-0.7</Y_DOT>
            <Z_DOT units="km/s">4.7</Z_DOT>
          </stateVector>
        </data>
      </segment>
    </body>
  </oem>
</ndm>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GetEphemeris(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(sampleOEM))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, testLogger())

	snapshot, err := client.GetEphemeris(context.Background())
	if err != nil {
		t.Fatalf("GetEphemeris() unexpected error: %v", err)
	}

	if snapshot.Header.Originator != "JSC" {
		t.Errorf("Header.Originator = %q, want JSC", snapshot.Header.Originator)
	}
	if snapshot.Header.CreationDate != "2024-080T04:05:10.110Z" {
		t.Errorf("Header.CreationDate = %q", snapshot.Header.CreationDate)
	}
	if snapshot.Metadata.ObjectName != "ISS" {
		t.Errorf("Metadata.ObjectName = %q, want ISS", snapshot.Metadata.ObjectName)
	}
	if snapshot.Metadata.RefFrame != "EME2000" {
		t.Errorf("Metadata.RefFrame = %q, want EME2000", snapshot.Metadata.RefFrame)
	}
	if len(snapshot.Comments) != 2 {
		t.Errorf("len(Comments) = %d, want 2", len(snapshot.Comments))
	}

	// The non-numeric record and the record missing X must both be dropped.
	if len(snapshot.StateVectors) != 2 {
		t.Fatalf("len(StateVectors) = %d, want 2", len(snapshot.StateVectors))
	}
	if snapshot.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", snapshot.Dropped)
	}

	sv := snapshot.StateVectors[1]
	if sv.Epoch != "2024-079T00:56:00.000Z" {
		t.Errorf("StateVectors[1].Epoch = %q", sv.Epoch)
	}
	if sv.Position.X != 719.875689675049 {
		t.Errorf("Position.X = %v, want 719.875689675049", sv.Position.X)
	}
	if sv.Velocity.Z != 4.1 {
		t.Errorf("Velocity.Z = %v, want 4.1", sv.Velocity.Z)
	}
}

func TestClient_GetEphemeris_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, testLogger())

	if _, err := client.GetEphemeris(context.Background()); err == nil {
		t.Fatal("GetEphemeris() expected error on 500 response")
	}
}

func TestClient_GetEphemeris_MalformedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<ndm><oem><header>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, testLogger())

	if _, err := client.GetEphemeris(context.Background()); err == nil {
		t.Fatal("GetEphemeris() expected error on truncated XML")
	}
}

func TestTranslateStateVector(t *testing.T) {
	valid := oemStateVector{
		Epoch: "2024-079T00:56:00.000Z",
		X:     oemMeasurement{Value: "1.0", Units: "km"},
		Y:     oemMeasurement{Value: "2.0", Units: "km"},
		Z:     oemMeasurement{Value: "3.0", Units: "km"},
		XDot:  oemMeasurement{Value: "-0.1", Units: "km/s"},
		YDot:  oemMeasurement{Value: "0.2", Units: "km/s"},
		ZDot:  oemMeasurement{Value: "-0.3", Units: "km/s"},
	}

	sv, err := translateStateVector(valid)
	if err != nil {
		t.Fatalf("translateStateVector() unexpected error: %v", err)
	}
	if sv.Position.Y != 2.0 || sv.Velocity.X != -0.1 {
		t.Errorf("translateStateVector() = %+v", sv)
	}

	infinite := valid
	infinite.ZDot = oemMeasurement{Value: "+Inf", Units: "km/s"}
	if _, err := translateStateVector(infinite); err == nil {
		t.Error("translateStateVector() expected error for non-finite component")
	}

	missing := valid
	missing.Y = oemMeasurement{}
	if _, err := translateStateVector(missing); err == nil {
		t.Error("translateStateVector() expected error for missing component")
	}
}
