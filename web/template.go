package web

import (
	"html/template"
	"net/url"

	"github.com/reelgrid/reelgrid/session"
)

// pageData is everything the page template renders from
type pageData struct {
	Status   session.Status
	Error    string
	MinYear  string
	MaxYear  string
	Selected []string // selected genre chips
	Pickable []string // available genres not yet selected
	Cards    []card
}

type card struct {
	Title       string
	Year        int
	Runtime     string
	Rating      string
	Description string
	ThumbURL    string
	DetailURL   string
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"q": url.QueryEscape,
}).Parse(pageTpl))

// single page, no external assets
const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>reelgrid</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1100px;margin:0 auto;padding:1rem}
header{display:flex;justify-content:space-between;align-items:center;margin-bottom:1rem}
.filters{border:1px solid #ddd;border-radius:8px;padding:12px;margin-bottom:16px;display:flex;gap:16px;flex-wrap:wrap;align-items:center}
.filters input[type=number]{width:6rem}
.chips{display:flex;gap:6px;flex-wrap:wrap}
.chip{background:#eef5ff;border-radius:999px;padding:3px 10px;font-size:.85rem}
.chip a{text-decoration:none;color:#666;margin-left:4px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:16px}
.card{border:1px solid #ddd;border-radius:8px;overflow:hidden}
.card img{width:100%;height:140px;object-fit:cover}
.card .body{padding:10px}
.title{font-weight:600}
.muted, small{color:#666}
.error{border:1px solid #e99;background:#fee;border-radius:8px;padding:12px}
</style>
<header>
  <strong>reelgrid</strong>
  <small>{{len .Cards}} shown</small>
</header>

{{if eq .Status.String "loading"}}
<p class="muted">Loading catalog…</p>
{{else if eq .Status.String "failed"}}
<div class="error">
  <strong>Could not load the catalog.</strong>
  <p>{{.Error}}</p>
  <p class="muted">Reload the page to try again after checking your connection.</p>
</div>
{{else}}
<section class="filters">
  <form action="/filter" method="get">
    <label>From <input type="number" name="min_year" value="{{.MinYear}}" placeholder="year"></label>
    <label>To <input type="number" name="max_year" value="{{.MaxYear}}" placeholder="year"></label>
    <button type="submit">Apply</button>
  </form>
  {{if .Pickable}}
  <form action="/genres/add" method="get">
    <select name="genre">
      {{range .Pickable}}<option value="{{.}}">{{.}}</option>{{end}}
    </select>
    <button type="submit">Add genre</button>
  </form>
  {{end}}
  <div class="chips">
    {{range .Selected}}
    <span class="chip">{{.}}<a href="/genres/remove?genre={{q .}}" title="Remove">&times;</a></span>
    {{end}}
  </div>
</section>

{{if .Cards}}
<section class="grid">
  {{range .Cards}}
  <article class="card">
    <img src="{{.ThumbURL}}" alt="{{.Title}}">
    <div class="body">
      <div class="title"><a href="{{.DetailURL}}">{{.Title}}</a></div>
      <small>{{.Year}}{{if .Runtime}} · {{.Runtime}}{{end}}{{if .Rating}} · {{.Rating}}{{end}}</small>
      {{if .Description}}<p class="muted">{{.Description}}</p>{{else}}<p class="muted">No description available.</p>{{end}}
    </div>
  </article>
  {{end}}
</section>
{{else}}
<p class="muted">No movies match the current filters.</p>
{{end}}
{{end}}
</html>
`
