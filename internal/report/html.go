// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"html/template"
	"io"
)

// htmlTemplate is the whole output document. The styling keys off the cell
// and row classes assigned by Rows.
var htmlTemplate = template.Must(template.New("report").Parse(`<html>
<head>
    <title>Differences between {{.FileA}} and {{.FileB}}</title>
    <style type="text/css">
    table {width:80%; border-collapse:collapse;}
    .removed {background: rgb(255, 196, 193);}
    .added {background: rgb(181, 239, 219);}
    td {text-align: right; padding:4px;}
    td:nth-child(1), td:nth-child(2) {text-align: center;}
    tr.newparticle td {border-top: 1px solid #cccccc;}
    tr.newparticle .removed {border-top: 1px solid rgb(255, 137, 131);}
    tr.newparticle .added {border-top: 1px solid rgb(107, 223, 184);}
    </style>
</head>
<body>
<h1>Differences between {{.FileA}} and {{.FileB}}</h1>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr class="{{.Class}}">{{range .Cells}}<td class="{{.Class}}">{{.Text}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// htmlData carries precomputed render state so the template stays dumb.
type htmlData struct {
	FileA, FileB string
	Headers      []string
	Rows         []Row
}

// WriteHTML renders the report as a single self-contained HTML document.
func (r *Report) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, htmlData{
		FileA:   r.FileA,
		FileB:   r.FileB,
		Headers: r.Headers(),
		Rows:    r.Rows(),
	})
}
