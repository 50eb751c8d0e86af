package config

// The following variables are available for use in the submit template:
//
// RunName        training run name
// Executable     path to the slaunch binary
// Config         path to the per-run config file
// WorkDir        per-run working directory
// Output         job output log path
// Nodes          requested node count
// Cpus           requested cpus per task
// Gpus           requested gpu count
// RamGb          requested ram
// WallTime       wall-clock limit
// MailType       mail notification triggers
// MailUser       mail recipient address
//
// See https://golang.org/pkg/text/template for more information

var slurmTemplate = `#!/bin/bash
#SBATCH --job-name {{.RunName}}
#SBATCH --ntasks 1
#SBATCH --nodes {{.Nodes}}
#SBATCH --error {{.WorkDir}}/slaunch-stderr
#SBATCH --output {{.Output}}
{{if ne .Cpus 0 -}}
{{printf "#SBATCH --cpus-per-task %d" .Cpus}}
{{- end}}
{{if ne .Gpus 0 -}}
{{printf "#SBATCH --gres gpu:%d" .Gpus}}
{{- end}}
{{if ne .RamGb 0.0 -}}
{{printf "#SBATCH --mem %.0fGB" .RamGb}}
{{- end}}
{{if .WallTime -}}
{{printf "#SBATCH --time %s" .WallTime}}
{{- end}}
{{if .MailType -}}
{{printf "#SBATCH --mail-type %s" .MailType}}
{{- end}}
{{if .MailUser -}}
{{printf "#SBATCH --mail-user %s" .MailUser}}
{{- end}}

{{.Executable}} launch --config {{.Config}}
`
