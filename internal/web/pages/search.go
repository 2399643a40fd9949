package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SearchDialog is the global search overlay, opened with Ctrl+K or Cmd+K
func SearchDialog() g.Node {
	return Dialog(
		ID("search"),
		g.Attr("aria-label", "Global search"),

		Input(
			ID("search-input"),
			Type("search"),
			AutoComplete("off"),
			Placeholder("Search docs, components, APIs..."),
		),

		Div(
			ID("search-tips"),
			Class("muted"),
			P(g.Text("Tips")),
			P(g.Text("Shortcut: "), Kbd(g.Text("Ctrl")), g.Text(" + "), Kbd(g.Text("K"))),
			P(g.Text("Search Scope: Site-wide")),
		),
		P(ID("search-status"), Class("muted"), g.Attr("hidden", "")),
		Ul(ID("search-results"), g.Attr("role", "listbox")),
	)
}

// searchScript drives the dialog. Each keystroke aborts the previous
// request and only the latest response is applied.
const searchScript = `
(function () {
  var dialog = document.getElementById("search");
  var input = document.getElementById("search-input");
  var tips = document.getElementById("search-tips");
  var status = document.getElementById("search-status");
  var list = document.getElementById("search-results");
  var results = [], selected = -1, token = 0, controller = null;

  function show(el, on) { if (on) { el.removeAttribute("hidden"); } else { el.setAttribute("hidden", ""); } }

  function render() {
    list.innerHTML = "";
    results.forEach(function (r, i) {
      var li = document.createElement("li");
      li.setAttribute("role", "option");
      li.setAttribute("aria-selected", i === selected ? "true" : "false");
      li.innerHTML = "<strong></strong><span class=chip></span><div class=muted></div>";
      li.children[0].textContent = r.title;
      li.children[1].textContent = r.category;
      li.children[2].textContent = r.description;
      li.addEventListener("click", function () { activate(r); });
      list.appendChild(li);
    });
  }

  function reset() {
    token++;
    if (controller) { controller.abort(); controller = null; }
    input.value = ""; results = []; selected = -1;
    show(tips, true); show(status, false); render();
  }

  function open() { if (!dialog.open) { reset(); dialog.showModal(); setTimeout(function () { input.focus(); }, 100); } }
  function close() { if (dialog.open) { dialog.close(); } reset(); }

  function activate(r) {
    console.log("Navigate to:", r.url);
    document.dispatchEvent(new CustomEvent("amphi:search", { detail: { query: r.title, url: r.url } }));
    close();
  }

  function query(q) {
    token++;
    if (controller) { controller.abort(); controller = null; }
    selected = -1; results = []; render();
    if (q.trim() === "") { show(tips, true); show(status, false); return; }
    var mine = token;
    controller = new AbortController();
    show(tips, false); show(status, true); status.textContent = "Searching...";
    fetch("/api/search?q=" + encodeURIComponent(q), { signal: controller.signal })
      .then(function (res) { return res.json(); })
      .then(function (body) {
        if (mine !== token) { return; }
        if (!body.success) { throw new Error(body.error || "search failed"); }
        results = body.data || [];
        show(status, results.length === 0);
        status.textContent = "No results found. Try using different keywords";
        render();
      })
      .catch(function (err) {
        if (err.name === "AbortError" || mine !== token) { return; }
        results = []; render();
        show(status, true); status.textContent = "Search failed: " + err.message;
      });
  }

  document.addEventListener("keydown", function (e) {
    if ((e.ctrlKey || e.metaKey) && e.key.toLowerCase() === "k") {
      e.preventDefault();
      open();
    }
  });
  document.querySelectorAll("[data-open-search]").forEach(function (el) { el.addEventListener("click", open); });

  input.addEventListener("input", function () { query(input.value); });
  dialog.addEventListener("close", reset);
  dialog.addEventListener("click", function (e) { if (e.target === dialog) { close(); } });
  dialog.addEventListener("keydown", function (e) {
    var n = results.length;
    if (e.key === "Escape") { e.preventDefault(); close(); return; }
    if (n === 0) { return; }
    if (e.key === "ArrowDown") { e.preventDefault(); selected = (selected + 1) % n; render(); }
    else if (e.key === "ArrowUp") { e.preventDefault(); selected = selected <= 0 ? n - 1 : selected - 1; render(); }
    else if (e.key === "Enter") {
      e.preventDefault();
      if (selected >= 0) { activate(results[selected]); }
      else if (input.value.trim() !== "") {
        document.dispatchEvent(new CustomEvent("amphi:search", { detail: { query: input.value } }));
      }
    }
  });
})();
`
