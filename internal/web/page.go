package web

const pageHTML = `<!DOCTYPE html>
<html lang="ta">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tamil Proverb Generator</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
section { margin-bottom: 2.5rem; }
form { display: flex; gap: .5rem; flex-wrap: wrap; }
input[type=text] { flex: 1; min-width: 12rem; padding: .5rem; }
.loader { width: 1.5rem; height: 1.5rem; border: 3px solid #ddd; border-top-color: #4ecdc4; border-radius: 50%; animation: spin 1s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }
.result-card { border: 1px solid #3d5a80; border-radius: 8px; padding: 1rem; margin-top: 1rem; }
.result-item { margin: .25rem 0; }
.label { font-weight: 600; margin-right: .5rem; }
.ai-box { line-height: 1.6; }
.proverb-table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
.proverb-table th, .proverb-table td { border: 1px solid #ccc; padding: .4rem; text-align: left; }
.type-literal { color: #2a9d8f; }
.type-figurative { color: #e76f51; }
.error { color: #c0392b; margin-top: 1rem; }
.no-results { margin-top: 1rem; color: #666; }
</style>
</head>
<body>
<h1>தமிழ் பழமொழி</h1>

<section>
<h2>Search</h2>
<form id="search-form" data-pipeline="search" action="/ui/search" method="post">
<input type="text" name="input_text" placeholder="Enter a Tamil proverb..." autocomplete="off">
<button type="submit">Search</button>
</form>
<div id="search-result" class="region" aria-live="polite"></div>
</section>

<section>
<h2>Filter</h2>
<form id="filter-form" data-pipeline="filter" action="/ui/filter" method="post">
<select name="type">{{range .Categories}}<option value="{{.}}">{{.}}</option>{{end}}</select>
<input type="text" name="keyword" placeholder="Keyword (optional)" autocomplete="off">
<button type="submit">Filter</button>
</form>
<div id="filter-result" class="region" aria-live="polite"></div>
</section>

<script>
(function () {
  var tokens = {};

  function show(p, t, html) {
    if (tokens[p] === t) {
      document.getElementById(p + "-result").innerHTML = html;
    }
  }

  async function run(form) {
    var p = form.dataset.pipeline;
    var data = new URLSearchParams(new FormData(form));
    var t = (tokens[p] || 0) + 1;
    tokens[p] = t;

    var echo = (data.get("input_text") || "").trim();
    try {
      if (p !== "search" || echo !== "") {
        var l = await fetch("/ui/loading/" + p + "?echo=" + encodeURIComponent(echo));
        show(p, t, await l.text());
      }
      var r = await fetch(form.action, { method: "POST", body: data });
      show(p, t, await r.text());
    } catch (e) {
      var div = document.createElement("div");
      div.className = "error";
      div.textContent = "❌ Error: " + e.message;
      show(p, t, div.outerHTML);
    }
  }

  document.addEventListener("submit", function (e) {
    if (e.target.dataset.pipeline) {
      e.preventDefault();
      run(e.target);
    }
  });

  document.addEventListener("click", function (e) {
    var el = e.target.closest("[data-action]");
    if (!el) return;
    var form = document.getElementById(el.dataset.action + "-form");
    if (form) run(form);
  });
})();
</script>
</body>
</html>
`
