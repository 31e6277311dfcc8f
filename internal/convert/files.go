package convert

import (
	"context"

	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
)

// SettingsFiles reads export settings from the file system.
type SettingsFiles struct{}

func (SettingsFiles) ReadSettings(ctx context.Context, path string) (*settings.ExportSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return settings.ReadFile(path)
}

// TemplateFiles loads .reqif and .reqifz templates from the file system.
type TemplateFiles struct{}

func (TemplateFiles) LoadTemplate(ctx context.Context, path string) (*reqif.ReqIF, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reqif.LoadFile(path)
}

// DocumentFiles writes the .reqif file and its .reqifz archive next to the target.
type DocumentFiles struct{}

func (DocumentFiles) Write(ctx context.Context, doc *reqif.ReqIF, target string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	return reqif.WriteFiles(doc, target)
}
