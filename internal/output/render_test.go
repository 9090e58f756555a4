package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"gdrive-eraser/internal/drive"
)

func sampleRecords() []*drive.FileRecord {
	return []*drive.FileRecord{
		{
			ID:           "f1",
			Name:         "video.mp4",
			MimeType:     "video/mp4",
			Size:         500 * 1024 * 1024,
			ModifiedTime: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
			FolderPath:   "/Movies",
			Owners:       []string{"Test User"},
		},
		{
			ID:           "f2",
			Name:         "backup.zip",
			MimeType:     "application/zip",
			Size:         250 * 1024 * 1024,
			ModifiedTime: time.Date(2025, 11, 2, 14, 30, 0, 0, time.UTC),
			FolderPath:   "/Backups/2025",
			Owners:       []string{"Test User"},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}

	if want := int64(750 * 1024 * 1024); s.TotalBytes != want {
		t.Errorf("TotalBytes = %d, want %d", s.TotalBytes, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.TotalBytes != 0 {
		t.Errorf("Summarize(nil) = %+v, want zeros", s)
	}
}

func TestRenderTable_ContainsRecordsAndTotals(t *testing.T) {
	var buf bytes.Buffer

	RenderTable(&buf, sampleRecords())
	got := buf.String()

	for _, want := range []string{"video.mp4", "backup.zip", "/Movies", "/Backups/2025", "Total files: 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestRenderJSON_RawValues(t *testing.T) {
	var buf bytes.Buffer

	filter := drive.Filter{Extension: ".mp4", MinSize: 100 * 1024 * 1024}
	if err := RenderJSON(&buf, sampleRecords(), filter); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		Extension      string `json:"extension"`
		MinSizeBytes   int64  `json:"min_size_bytes"`
		Count          int    `json:"count"`
		TotalSizeBytes int64  `json:"total_size_bytes"`
		Files          []struct {
			ID         string `json:"id"`
			Size       int64  `json:"size"`
			FolderPath string `json:"folder_path"`
		} `json:"files"`
	}

	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Extension != ".mp4" {
		t.Errorf("extension = %q, want .mp4", out.Extension)
	}

	if out.Count != 2 || len(out.Files) != 2 {
		t.Errorf("count = %d, files = %d, want 2 each", out.Count, len(out.Files))
	}

	if out.Files[0].Size != 500*1024*1024 {
		t.Errorf("size = %d, want raw byte value", out.Files[0].Size)
	}

	if out.Files[1].FolderPath != "/Backups/2025" {
		t.Errorf("folder_path = %q, want /Backups/2025", out.Files[1].FolderPath)
	}
}

func TestRenderJSON_EmptyRecordsHasEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderJSON(&buf, nil, drive.Filter{Extension: ".pdf"}); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	if !strings.Contains(buf.String(), `"files": []`) {
		t.Errorf("empty record set should render an empty array, got: %s", buf.String())
	}
}

func TestTableAndJSONTotalsAgree(t *testing.T) {
	records := sampleRecords()

	var tableBuf, jsonBuf bytes.Buffer

	RenderTable(&tableBuf, records)
	if err := RenderJSON(&jsonBuf, records, drive.Filter{Extension: ".mp4"}); err != nil {
		t.Fatal(err)
	}

	var out struct {
		Count          int   `json:"count"`
		TotalSizeBytes int64 `json:"total_size_bytes"`
	}
	if err := json.Unmarshal(jsonBuf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}

	s := Summarize(records)
	if out.Count != s.Count || out.TotalSizeBytes != s.TotalBytes {
		t.Errorf("JSON totals (%d, %d) disagree with summary (%d, %d)", out.Count, out.TotalSizeBytes, s.Count, s.TotalBytes)
	}

	if !strings.Contains(tableBuf.String(), fmt.Sprintf("Total files: %d", s.Count)) {
		t.Errorf("table totals disagree with summary count %d", s.Count)
	}
}
