// internal/panel/templates.go
package panel

import "html/template"

// cardIcons are the fixed icons of the three KPI cards, in card order.
var cardIcons = [...]template.HTML{
	`<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"/></svg>`,
	`<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"/></svg>`,
	`<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13 10V3L4 14h7v7l9-11h-7z"/></svg>`,
}

var panelTemplates = template.Must(template.New("panel-fragments").Parse(panelTemplatesHTML))

const panelTemplatesHTML = `
{{- define "kpi-card" -}}
<div class="kpi-card bg-gray-800/50 backdrop-blur-sm rounded-lg p-4 border border-gray-700/50 hover:border-gray-600/50 transition-all duration-300">
  <div class="flex items-center gap-3">
    <div class="{{ .Background }} {{ .Color }} p-3 rounded-lg">{{ .Icon }}</div>
    <div class="flex-1">
      <p class="text-sm text-gray-400 font-medium">{{ .Label }}</p>
      <p class="text-2xl font-bold {{ .Color }}">{{ .Value }}</p>
    </div>
  </div>
</div>
{{- end }}

{{- define "chart-row" -}}
<div class="chart-row space-y-1">
  <div class="flex justify-between items-center text-sm">
    <span class="text-gray-400">{{ .Label }}</span>
    <span class="text-gray-300 font-semibold">{{ .Value }}</span>
  </div>
  <div class="h-3 bg-gray-700/50 rounded-full overflow-hidden">
    <div class="h-full bg-gradient-to-r from-purple-500 to-pink-500 rounded-full transition-all duration-500" style="width: {{ .Width }}%"></div>
  </div>
</div>
{{- end }}

{{- define "confidence-chart" -}}
<svg class="w-full h-full" viewBox="0 0 {{ .Width }} {{ .Height }}" preserveAspectRatio="none">
  <defs>
    <linearGradient id="confidenceLine" x1="0%" y1="0%" x2="100%" y2="0%">
      <stop offset="0%" style="stop-color:#a855f7" />
      <stop offset="100%" style="stop-color:#ec4899" />
    </linearGradient>
    <linearGradient id="confidenceArea" x1="0%" y1="0%" x2="0%" y2="100%">
      <stop offset="0%" style="stop-color:#a855f7" />
      <stop offset="100%" style="stop-color:#1f2937" />
    </linearGradient>
  </defs>
  {{- $width := .Width }}
  {{- range .Gridlines }}
  <line x1="0" y1="{{ . }}" x2="{{ $width }}" y2="{{ . }}" stroke="rgba(255,255,255,0.1)" stroke-width="0.5"/>
  {{- end }}
  <polygon points="{{ .Area }}" fill="url(#confidenceArea)" opacity="0.3"/>
  <polyline points="{{ .Line }}" fill="none" stroke="url(#confidenceLine)" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>
  {{- range .Markers }}
  <circle cx="{{ .X }}" cy="{{ .Y }}" r="3" fill="#a855f7"/>
  {{- end }}
</svg>
{{- end }}

{{- define "hero" -}}
<div class="hero-image bg-gradient-to-br from-gray-800/80 to-gray-900/80 backdrop-blur-sm rounded-2xl p-6 border border-gray-700/50 shadow-2xl mt-6">
  <h3 class="text-xl font-semibold text-gray-200 mb-4">Generated Output</h3>
  <div class="relative group">
    <div class="absolute inset-0 bg-gradient-to-r from-purple-500/20 to-pink-500/20 rounded-xl blur-xl group-hover:blur-2xl transition-all duration-300"></div>
    <div class="relative bg-gray-900/50 rounded-xl overflow-hidden shadow-xl">
      <img src="{{ .ImageURL }}" alt="Generated output" class="w-full h-auto object-contain rounded-xl transition-transform duration-300 group-hover:scale-105">
    </div>
  </div>
  {{- if .Prompt }}
  <div class="prompt-caption mt-4 p-4 bg-gray-800/50 rounded-lg border border-gray-700/50">
    <p class="text-sm text-gray-400 mb-1 font-medium">Prompt:</p>
    <p class="text-gray-200 text-sm leading-relaxed">{{ .Prompt }}</p>
  </div>
  {{- end }}
</div>
{{- end }}

{{- define "panel" -}}
<div class="metrics-panel w-full space-y-6 p-4 fade-in" style="background: linear-gradient(135deg, #1f2937 0%, #111827 100%); border-radius: 1rem;">
  <style>
    @keyframes fadeIn {
      from { opacity: 0; transform: translateY(10px); }
      to { opacity: 1; transform: translateY(0); }
    }
    .fade-in { animation: fadeIn 0.5s ease-out; }
  </style>
  <div class="grid grid-cols-1 md:grid-cols-3 gap-4">
    {{- range .Cards }}
    {{ template "kpi-card" . }}
    {{- end }}
  </div>
  <div class="bg-gray-800/50 backdrop-blur-sm rounded-lg p-6 border border-gray-700/50">
    <h3 class="text-lg font-semibold text-gray-200 mb-4">Confidence Score Analysis</h3>
    <div class="space-y-3">
      {{- range .Rows }}
      {{ template "chart-row" . }}
      {{- end }}
    </div>
    <div class="mt-6 h-32 relative">
      {{ template "confidence-chart" .Chart }}
    </div>
  </div>
  {{- with .Hero }}
  {{ template "hero" . }}
  {{- end }}
</div>
{{- end }}
`
