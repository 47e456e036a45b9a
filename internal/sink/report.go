package sink

import (
	"html/template"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reportTemplate = `<html>
<head><title>Spectrum Analysis Report</title></head>
<body>
<h1>Spectrum Analysis Report</h1>
<p>Generated: {{.GeneratedAt}}</p>
<p>{{.FileCount}} processed.</p>
{{range .Files}}
<div class="file-section">
    <h2>Data file: {{.FileName}}</h2>
    {{$file := .FileName}}
    {{range .Sections}}
    <h3>Autocorrelation function {{.Index}} from {{$file}}</h3>
    <p><strong>Autocorrelation function {{.Index}}:</strong></p>
    <img src="{{.AutocorrPNG}}" alt="Autocorrelation {{.Index}}" width="800">
    <p><strong>Power spectrum {{.Index}}:</strong></p>
    <img src="{{.SpectrumPNG}}" alt="Power spectrum {{.Index}}" width="800">
    <p><strong>Interactive power spectrum {{.Index}}:</strong> <a href="{{.InteractiveHTML}}" target="_blank">Open</a></p>
    <p>The power spectrum describes how the signal's power is distributed across frequencies. Higher dB values mean more power at that frequency.</p>
    <p>The autocorrelation function describes the signal's temporal structure, i.e. how values at different time offsets relate to each other.</p>
    <hr>
    {{end}}
</div>
{{end}}
</body>
</html>
`

type reportSection struct {
	Index           int
	AutocorrPNG     string
	SpectrumPNG     string
	InteractiveHTML string
}

type reportFile struct {
	FileName string
	Sections []reportSection
}

type reportData struct {
	GeneratedAt string
	FileCount   string
	Files       []reportFile
}

// WriteReport renders the HTML summary report for the whole batch. An empty
// result set still produces a valid report.
func WriteReport(path string, results []FileResult, generatedAt time.Time) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return NewSinkError(StageReport, path, "failed to parse report template", err)
	}

	printer := message.NewPrinter(language.English)
	data := reportData{
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05"),
		FileCount:   printer.Sprintf("%d data file(s)", len(results)),
	}

	for _, result := range results {
		file := reportFile{FileName: result.FileName}
		for i, refs := range result.Artifacts {
			if refs == nil {
				continue
			}
			file.Sections = append(file.Sections, reportSection{
				Index:           i + 1,
				AutocorrPNG:     refs.AutocorrPNG,
				SpectrumPNG:     refs.SpectrumPNG,
				InteractiveHTML: refs.InteractiveHTML,
			})
		}
		data.Files = append(data.Files, file)
	}

	f, err := os.Create(path)
	if err != nil {
		return NewSinkError(StageReport, path, "failed to create report file", err)
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return NewSinkError(StageReport, path, "failed to render report", err)
	}
	if err := f.Close(); err != nil {
		return NewSinkError(StageReport, path, "failed to write report", err)
	}
	return nil
}
