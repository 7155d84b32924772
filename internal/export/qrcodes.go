// Package export renders downloadable artifacts from the materialized
// tables: the per-member QR code archive and the spreadsheet workbook. Both
// are pure functions of their inputs.
package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"feetrack/internal/core"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"
)

const qrSize = 256

// SelfServiceURL builds the link a member's code points at.
func SelfServiceURL(baseURL, memberID string) string {
	return strings.TrimRight(baseURL, "/") + "/m/" + core.NormalizeID(memberID)
}

// BuildCodeArchive renders one QR PNG per member, each encoding that
// member's self-service link, and bundles them into a zip. PNG encoding is
// fanned out on a bounded errgroup; the archive itself is written serially
// to keep output order stable.
func BuildCodeArchive(members []core.Member, baseURL string) ([]byte, error) {
	type encoded struct {
		name string
		png  []byte
	}
	results := make([]encoded, len(members))

	var g errgroup.Group
	g.SetLimit(8)
	for i, m := range members {
		g.Go(func() error {
			png, err := qrcode.Encode(SelfServiceURL(baseURL, m.ID), qrcode.Medium, qrSize)
			if err != nil {
				return fmt.Errorf("encode code for %s: %w", m.ID, err)
			}
			results[i] = encoded{name: codeFileName(m), png: png}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, r := range results {
		w, err := zw.Create(r.name)
		if err != nil {
			return nil, fmt.Errorf("create archive entry %s: %w", r.name, err)
		}
		if _, err := w.Write(r.png); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", r.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func codeFileName(m core.Member) string {
	return sanitizeFileName(m.Name) + "_" + sanitizeFileName(m.ID) + ".png"
}

// sanitizeFileName keeps archive entries flat and portable.
func sanitizeFileName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "member"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, s)
}
