// Package services – CodegenService
//
// This file implements boilerplate integration-code generation for a catalog
// entry. Generation is plain string-template substitution: the output is a
// JavaScript scaffold (fetch client, Express proxy route, React hook) filled
// in with the API's name, link, auth mode, and the requesting user. There is
// no compilation or validation of the produced code.
package services

import (
	"strings"
	"text/template"
	"time"
)

// GenerateInput carries the catalog entry fields the generator substitutes
// into the scaffold template.
type GenerateInput struct {
	APIName     string
	Description string
	Link        string
	Category    string
	Auth        string
	HTTPS       bool
	Username    string
}

// CodegenService renders integration scaffolds from a parsed template.
// The zero value is not usable; construct it with NewCodegenService.
type CodegenService struct {
	tmpl *template.Template

	// now stamps the generated-at header; replaceable in tests.
	now func() time.Time
}

// NewCodegenService parses the scaffold template once and returns a ready
// generator.
func NewCodegenService() *CodegenService {
	return &CodegenService{
		tmpl: template.Must(template.New("scaffold").Parse(scaffoldTemplate)),
		now:  time.Now,
	}
}

// Generate renders the integration scaffold for in. The API name is the only
// required field; everything else degrades to sensible placeholders.
//
// Errors:
//   - ErrEmptyAPIName when in.APIName is empty or whitespace.
func (s *CodegenService) Generate(in GenerateInput) (string, error) {
	in.APIName = strings.TrimSpace(in.APIName)
	if in.APIName == "" {
		return "", ErrEmptyAPIName
	}
	if in.Link == "" {
		in.Link = "https://example.com/api"
	}
	if in.Auth == "" {
		in.Auth = "none"
	}

	slug := Slugify(in.APIName)
	data := struct {
		GenerateInput
		Slug        string
		Component   string
		EnvVar      string
		GeneratedAt string
	}{
		GenerateInput: in,
		Slug:          slug,
		Component:     componentName(in.APIName),
		EnvVar:        strings.ToUpper(strings.ReplaceAll(slug, "-", "_")) + "_TOKEN",
		GeneratedAt:   s.now().UTC().Format(time.RFC3339),
	}

	var b strings.Builder
	if err := s.tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Slugify lowers a name and collapses spaces and underscores to hyphens,
// producing the URL-safe slug used in generated routes and deployment URLs.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// componentName strips spaces to form a PascalCase-ish React component name.
func componentName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "")
}

// scaffoldTemplate is the full-stack integration scaffold. It intentionally
// errs on the side of being copy-paste runnable rather than minimal.
const scaffoldTemplate = `// {{.APIName}} integration
// {{.Description}}
// Generated for {{.Username}} at {{.GeneratedAt}}
// Upstream: {{.Link}} (auth: {{.Auth}})

// --- api/{{.Slug}}.js -------------------------------------------------------

const BASE_URL = "{{.Link}}";

export async function fetch{{.Component}}(path = "", options = {}) {
  const headers = { Accept: "application/json", ...options.headers };
{{- if ne .Auth "none"}}
  // {{.APIName}} requires {{.Auth}} auth; supply the credential via env.
  headers["Authorization"] = ` + "`Bearer ${process.env.{{.EnvVar}}}`" + `;
{{- end}}
  const res = await fetch(BASE_URL + path, { ...options, headers });
  if (!res.ok) {
    throw new Error(` + "`{{.APIName}} request failed: ${res.status}`" + `);
  }
  return res.json();
}

// --- server/routes/{{.Slug}}.js ---------------------------------------------

import express from "express";

export const {{.Component}}Router = express.Router();

{{.Component}}Router.get("/api/{{.Slug}}", async (req, res) => {
  try {
    const data = await fetch{{.Component}}(req.query.path || "");
    res.json(data);
  } catch (err) {
    res.status(502).json({ error: err.message });
  }
});

// --- components/{{.Component}}.jsx ------------------------------------------

import { useEffect, useState } from "react";

export function use{{.Component}}(path = "") {
  const [data, setData] = useState(null);
  const [error, setError] = useState(null);

  useEffect(() => {
    let cancelled = false;
    fetch{{.Component}}(path)
      .then((d) => { if (!cancelled) setData(d); })
      .catch((e) => { if (!cancelled) setError(e); });
    return () => { cancelled = true; };
  }, [path]);

  return { data, error, loading: data === null && error === null };
}
`
