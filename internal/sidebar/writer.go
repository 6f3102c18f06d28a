package sidebar

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// artifactHeader marks the output as generated. The site build imports the
// exported binding; the shape of the literal is the contract.
const artifactHeader = `// This file is auto-generated by docwright. Do not edit by hand.
// Regenerate with: docwright sidebar

import type { DefaultTheme } from 'vitepress'

export const sidebar: DefaultTheme.SidebarItem[] = `

// write renders the structure as a TypeScript module and persists it,
// creating any missing ancestor directories and unconditionally replacing
// an existing artifact.
func write(groups []Group, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ioError("failed to create output directory "+dir, err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(artifactHeader)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(groups); err != nil {
		return ioError("failed to serialize sidebar structure", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return ioError("failed to write "+outputPath, err)
	}
	return nil
}
