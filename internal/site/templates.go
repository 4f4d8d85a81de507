package site

// pageTemplate renders one skin of the landing page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Content.Hero.Title}} · {{.Skin.Name}}</title>
  <meta name="description" content="{{.Content.Hero.Description}}">
  {{- if .Opts.Canonical}}
  <link rel="canonical" href="{{.Opts.Canonical}}">
  {{- end}}
  <link rel="stylesheet" href="{{.Opts.Assets}}style.css">
  {{- if .Skin.Features.BootGate}}
  <noscript><style>.briefing[hidden]{display:block}.boot{display:none}</style></noscript>
  {{- end}}
</head>
<body data-skin="{{.Skin.ID}}" class="skin skin-{{.Skin.ID}}"{{if .Opts.Live}} data-live{{end}}>
  <a class="home-link" href="{{.Opts.Home}}">← all directions</a>
  {{- if .Skin.Features.BootGate}}
  <section class="boot" id="boot" data-boot-url="{{.Opts.BootURL}}"{{if .Opts.SkipBoot}} hidden{{end}}>
    <div class="boot-screen" id="boot-screen" aria-live="polite"></div>
    <a class="boot-skip" href="?boot=skip" data-boot-skip>[ skip ]</a>
  </section>
  {{- end}}
  <div class="briefing" id="briefing"{{if and .Skin.Features.BootGate (not .Opts.SkipBoot)}} hidden{{end}}>
  {{- if .Skin.Features.SectionNav}}
  <nav class="section-nav">
    {{- range $i, $s := .Sections}}
    <a href="#{{$s.ID}}"><span class="nav-index">{{pad2 (inc $i)}}</span> {{$s.Label}}</a>
    {{- end}}
  </nav>
  {{- end}}
  {{- if .Marquee}}
  <div class="marquee" aria-hidden="true"><div class="marquee-track">
    {{- range .Marquee}}<span>{{.}}</span>{{end -}}
  </div></div>
  {{- end}}
  <main>
    <header class="section hero" id="hero">
      {{- if .Skin.Features.Split}}
      <div class="split">
        <div class="half half-human"><span class="half-label">HUMANS</span><p>build infrastructure for agents</p></div>
        <div class="half half-agent"><span class="half-label">AGENTS</span><p>build apps with each other</p></div>
      </div>
      {{- end}}
      <h1 class="hero-title">{{.Content.Hero.Title}}</h1>
      <p class="hero-subtitle">{{.Content.Hero.Subtitle}}</p>
      <p class="hero-description">{{md .Content.Hero.Description}}</p>
      <p class="hero-catchphrase">{{.Content.Hero.Catchphrase}}</p>
      <p class="hero-ethos">{{.Content.Hero.Ethos}}</p>
      <div class="cta cta-primary">
        {{- range .Content.Hero.Primary}}
        <a class="btn" href="{{.Href}}">{{.Label}}</a>
        {{- end}}
      </div>
      <div class="cta cta-secondary">
        {{- range .Content.Hero.Secondary}}
        <a class="link" href="{{.Href}}">{{.Label}} →</a>
        {{- end}}
      </div>
      <p class="hero-microcopy">{{.Content.Hero.Microcopy}}</p>
    </header>

    <section class="section" id="what">
      <h2>{{.Content.WhatThisIs.Title}}</h2>
      {{- range .Content.WhatThisIs.Body}}
      <p>{{md .}}</p>
      {{- end}}
    </section>

    <section class="section" id="tracks">
      <h2>{{.Content.Tracks.Title}}</h2>
      <div class="tracks">
      {{- range .Content.Tracks.Items}}
        <article class="track track-{{.ID}}" id="track-{{.ID}}">
          <h3>{{.Name}}</h3>
          <p class="track-tagline">{{md .Tagline}}</p>
          {{- if .Examples}}
          <ul>{{range .Examples}}<li>{{md .}}</li>{{end}}</ul>
          {{- end}}
          {{- if .Details}}
          <ul>{{range .Details}}<li>{{md .}}</li>{{end}}</ul>
          {{- end}}
          {{- if .Note}}
          <p class="track-note">{{md .Note}}</p>
          {{- end}}
          {{- if .Wants}}
          <p class="track-wants-title">We want:</p>
          <ul class="track-wants">{{range .Wants}}<li>{{md .}}</li>{{end}}</ul>
          {{- end}}
        </article>
      {{- end}}
      </div>
    </section>

    <section class="section" id="trojan">
      <h2>{{.Content.TrojanHorse.Title}}</h2>
      {{- range .Content.TrojanHorse.Body}}
      <p>{{md .}}</p>
      {{- end}}
    </section>

    <section class="section" id="judging">
      <h2>{{.Content.Judging.Title}}</h2>
      <p class="section-subtitle">{{.Content.Judging.Subtitle}}</p>
      <div class="juries">
      {{- range .Content.Judging.Juries}}
        <div class="jury"><h3>{{.Name}}</h3><p>{{md .Criteria}}</p></div>
      {{- end}}
      </div>
      <h3>{{.Content.Judging.WinsTitle}}</h3>
      <ol class="wins">{{range .Content.Judging.Wins}}<li>{{md .}}</li>{{end}}</ol>
    </section>

    <section class="section" id="prizes">
      <h2>{{.Content.Prizes.Title}}</h2>
      <p class="prize-total">{{.Content.Prizes.Total}}</p>
      <p class="prize-note">{{.Content.Prizes.Note}}</p>
      <ul class="prize-categories">{{range .Content.Prizes.Categories}}<li>{{.}}</li>{{end}}</ul>
      <p class="sponsor-callout">{{md .Content.Prizes.SponsorCallout}}</p>
    </section>

    <section class="section" id="who">
      <h2>{{.Content.WhoShouldApply.Title}}</h2>
      <div class="groups">
      {{- range .Content.WhoShouldApply.Groups}}
        <div class="group"><h3>{{.Name}}</h3><p>{{md .Description}}</p></div>
      {{- end}}
      </div>
    </section>

    <section class="section" id="timeline">
      <h2>{{.Content.Timeline.Title}}</h2>
      <ol class="timeline">
      {{- range .Content.Timeline.Events}}
        <li><span class="event-label">{{.Label}}</span><span class="event-date">{{.Date}}</span></li>
      {{- end}}
      </ol>
    </section>

    <section class="section" id="faq">
      <h2>{{.Content.FAQ.Title}}</h2>
      {{.FAQ}}
    </section>

    <section class="section apply" id="apply">
      <div class="cta cta-primary">
        {{- range .Content.Hero.Primary}}
        <a class="btn" href="{{.Href}}">{{.Label}}</a>
        {{- end}}
      </div>
    </section>
  </main>
  <footer class="footer">
    <p>{{md .Content.Footer}}</p>
  </footer>
  </div>
  <script src="{{.Opts.Assets}}script.js"></script>
</body>
</html>
`

// indexTemplate is the skin chooser.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Content.Hero.Title}}</title>
  <link rel="stylesheet" href="{{.Opts.Assets}}style.css">
</head>
<body class="chooser">
  <header class="chooser-header">
    <h1>{{.Content.Hero.Title}}</h1>
    <p>Choose a design direction</p>
  </header>
  <div class="chooser-grid">
  {{- range $i, $e := .Entries}}
    <a class="chooser-card" data-skin="{{$e.Skin.ID}}" href="{{$e.Href}}">
      <span class="chooser-version">V{{inc $i}}</span>
      <h2>{{$e.Skin.Name}}</h2>
      <p>{{$e.Skin.Description}}</p>
      <span class="chooser-view">VIEW →</span>
    </a>
  {{- end}}
  </div>
</body>
</html>
`

// skinVarsTemplate emits the custom properties of every skin.
const skinVarsTemplate = `/* ============ Skin variables ============ */
{{range .}}[data-skin="{{.ID}}"] {
  --bg: {{.Palette.Background}};
  --surface: {{.Palette.Surface}};
  --text: {{.Palette.Text}};
  --muted: {{.Palette.Muted}};
  --accent: {{.Palette.Accent}};
  --accent-2: {{.Palette.Accent2}};
  --border: {{.Palette.Border}};
  --font: {{.Palette.Font}};
  --heading: {{.Palette.Heading}};
}
{{end}}`

// cssContent holds the rules shared by every skin plus the per-skin overrides.
const cssContent = `
/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  background: var(--bg, #000);
  color: var(--text, #fff);
  font-family: var(--font, system-ui, sans-serif);
  line-height: 1.6;
  -webkit-font-smoothing: antialiased;
}
a { color: inherit; }
main { max-width: 72rem; margin: 0 auto; padding: 0 1.5rem; }
h1, h2, h3 { font-family: var(--heading); font-weight: 300; letter-spacing: -0.01em; }
.home-link { position: fixed; top: 1rem; left: 1rem; font-size: 0.75rem; color: var(--muted); text-decoration: none; z-index: 10; }
.section { padding: 6rem 0; border-top: 1px solid var(--border); }
.section h2 { font-size: 2.5rem; margin: 0 0 2rem; }
.section-subtitle { color: var(--muted); text-transform: uppercase; letter-spacing: 0.2em; font-size: 0.8rem; }

/* ============ Hero ============ */
.hero { min-height: 100vh; display: flex; flex-direction: column; justify-content: center; border-top: 0; }
.hero-title { font-size: clamp(3rem, 10vw, 8rem); margin: 0; line-height: 1; }
.hero-subtitle { letter-spacing: 0.3em; color: var(--muted); font-size: 0.85rem; }
.hero-description { max-width: 40rem; font-size: 1.15rem; }
.hero-catchphrase { font-size: 1.5rem; color: var(--accent); }
.hero-ethos, .hero-microcopy { color: var(--muted); font-size: 0.9rem; }
.cta { display: flex; flex-wrap: wrap; gap: 1rem; margin: 1.5rem 0; }
.btn { border: 1px solid var(--accent); padding: 0.75rem 1.5rem; text-decoration: none; transition: background 0.2s, color 0.2s; }
.btn:hover { background: var(--accent); color: var(--bg); }
.link { color: var(--muted); text-decoration: none; }
.link:hover { color: var(--text); }

/* ============ Cards ============ */
.tracks, .juries, .groups { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); }
.track, .jury, .group { border: 1px solid var(--border); background: var(--surface); padding: 2rem; }
.track-tagline { color: var(--accent); }
.track-note { color: var(--muted); font-style: italic; }
.prize-total { font-size: clamp(3rem, 8vw, 6rem); margin: 0; color: var(--accent); }
.prize-note { color: var(--muted); }
.prize-categories { columns: 2; padding-left: 1.2rem; }
.timeline { list-style: none; padding: 0; }
.timeline li { display: flex; justify-content: space-between; border-bottom: 1px solid var(--border); padding: 1rem 0; }
.event-date { color: var(--muted); }
.footer { max-width: 72rem; margin: 0 auto; padding: 3rem 1.5rem; color: var(--muted); border-top: 1px solid var(--border); font-size: 0.9rem; }

/* ============ Accordion ============ */
.accordion-item { border-bottom: 1px solid var(--border); }
.accordion-header { display: flex; justify-content: space-between; align-items: center; gap: 1rem; padding: 1.25rem 0; text-decoration: none; cursor: pointer; }
.accordion-question { font-size: 1.1rem; font-weight: 500; }
.accordion-marker { flex-shrink: 0; font-size: 1.5rem; transition: transform 0.2s; }
.faq-rotate { display: inline-block; }
.is-open .faq-rotate { transform: rotate(45deg); }
.accordion-body { display: grid; grid-template-rows: 1fr; opacity: 1; color: var(--muted); transition: grid-template-rows 0.3s ease, opacity 0.3s ease, visibility 0.3s; }
.accordion-body[hidden] { display: grid; grid-template-rows: 0fr; opacity: 0; visibility: hidden; }
.accordion-answer { min-height: 0; overflow: hidden; }
.accordion-answer p { margin: 0 0 1.25rem; }

/* ============ Chooser ============ */
.chooser { background: #000; color: #fff; font-family: system-ui, sans-serif; min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; padding: 3rem 1.5rem; }
.chooser-header { text-align: center; margin-bottom: 4rem; }
.chooser-header h1 { font-size: clamp(3rem, 8vw, 5rem); font-weight: 200; margin: 0; }
.chooser-header p { color: rgba(255,255,255,0.4); }
.chooser-grid { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fit, minmax(18rem, 1fr)); max-width: 64rem; width: 100%; }
.chooser-card { display: block; border: 1px solid rgba(255,255,255,0.2); padding: 2rem; text-decoration: none; transition: transform 0.3s, border-color 0.3s; }
.chooser-card:hover { transform: scale(1.02); border-color: var(--accent); }
.chooser-card h2 { color: var(--accent); font-weight: 300; margin: 0.5rem 0; }
.chooser-card p { color: rgba(255,255,255,0.4); font-size: 0.9rem; }
.chooser-version, .chooser-view { font-family: ui-monospace, monospace; font-size: 0.75rem; color: rgba(255,255,255,0.3); letter-spacing: 0.1em; }
.chooser-card[data-skin="v5"] h2 { color: #e7e5e4; }
.chooser-card[data-skin="v6"] h2 { color: #EBFF00; }

/* ============ v2 Ethereal Glow ============ */
.skin-v2 .hero-title, .skin-v2 .glow-text { text-shadow: 0 0 24px rgba(34,211,238,0.6), 0 0 64px rgba(168,85,247,0.35); }
.skin-v2 .hero-title { background: linear-gradient(90deg, var(--accent), var(--accent-2)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.skin-v2 .track { border-radius: 1rem; backdrop-filter: blur(8px); }

/* ============ v3 Split Identity ============ */
.split { position: absolute; inset: 0; display: grid; grid-template-columns: 1fr 1fr; z-index: -1; }
.skin-v3 .hero { position: relative; text-align: center; align-items: center; }
.half { display: flex; flex-direction: column; justify-content: flex-end; padding: 2rem; }
.half-human { background: linear-gradient(135deg, rgba(251,191,36,0.15), transparent); color: var(--accent); }
.half-agent { background: linear-gradient(225deg, rgba(103,232,249,0.15), transparent); color: var(--accent-2); text-align: right; }
.half-label { font-family: ui-monospace, monospace; letter-spacing: 0.4em; font-size: 0.75rem; }
.skin-v3 .hero-title { background: linear-gradient(90deg, var(--accent), var(--accent-2)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.skin-v3 .track-human { border-color: rgba(251,191,36,0.4); }
.skin-v3 .track-ai { border-color: rgba(103,232,249,0.4); }

/* ============ v4 Terminal ============ */
.skin-v4 h1, .skin-v4 h2, .skin-v4 h3 { font-weight: 700; }
.skin-v4 .section h2::before { content: "> "; color: var(--accent-2); }
.skin-v4 .track, .skin-v4 .jury, .skin-v4 .group { background: transparent; border-style: dashed; }
.skin-v4 .btn { border-color: var(--border); }
.skin-v4 main { padding-left: 14rem; }
.boot { min-height: 100vh; padding: 2rem; font-family: var(--font); }
.boot-screen { white-space: pre; font-size: 0.9rem; }
.boot-line { min-height: 1.5em; }
.boot-prompt { color: var(--accent-2); margin-right: 0.5ch; }
.boot-output { color: var(--muted); }
.boot-cursor { animation: blink 1s steps(1) infinite; }
.boot-skip { position: fixed; bottom: 1rem; right: 1rem; color: var(--muted); text-decoration: none; font-size: 0.8rem; }
@keyframes blink { 50% { opacity: 0; } }
.section-nav { position: fixed; top: 3rem; left: 1rem; display: flex; flex-direction: column; gap: 0.35rem; font-size: 0.75rem; }
.section-nav a { text-decoration: none; color: var(--muted); }
.section-nav a:hover { color: var(--accent); }
.nav-index { color: var(--accent-2); }
.faq-bracket { font-size: 1rem; color: var(--accent); }
@media (max-width: 60rem) { .section-nav { display: none; } .skin-v4 main { padding-left: 1.5rem; } }

/* ============ v5 Editorial ============ */
.skin-v5 main { max-width: 46rem; }
.skin-v5 .hero-title { font-weight: 700; font-style: italic; letter-spacing: -0.03em; }
.skin-v5 .section h2 { font-weight: 700; border-bottom: 2px solid var(--accent); display: inline-block; }
.skin-v5 .section p:first-of-type::first-letter { font-family: var(--heading); font-size: 3.2em; float: left; line-height: 0.9; margin-right: 0.1em; }
.skin-v5 .track, .skin-v5 .jury, .skin-v5 .group { border: 0; border-top: 1px solid var(--border); background: transparent; padding: 1.5rem 0; }

/* ============ v6 Brutalist ============ */
.skin-v6 h1, .skin-v6 h2 { font-weight: 900; text-transform: uppercase; letter-spacing: -0.04em; }
.skin-v6 .section { border-top: 6px solid var(--border); }
.skin-v6 .track, .skin-v6 .jury, .skin-v6 .group { border: 4px solid var(--border); box-shadow: 8px 8px 0 var(--border); background: var(--bg); }
.skin-v6 .btn { background: var(--surface); color: var(--accent-2); border: 4px solid var(--border); font-weight: 700; text-transform: uppercase; }
.skin-v6 .btn:hover { background: var(--bg); color: var(--text); }
.skin-v6 .accordion-item { border-bottom: 4px solid var(--border); }
.marquee { overflow: hidden; background: var(--surface); color: var(--accent-2); border-block: 4px solid var(--border); }
.marquee-track { display: inline-flex; gap: 3rem; white-space: nowrap; padding: 0.75rem 0; animation: marquee 30s linear infinite; font-weight: 700; text-transform: uppercase; }
@keyframes marquee { from { transform: translateX(0); } to { transform: translateX(-50%); } }
@media (prefers-reduced-motion: reduce) { .marquee-track, .boot-cursor { animation: none; } }
`

// jsContent is the client script. It toggles the accordion without a page
// load and drives the boot screen from live frames or a recorded timeline.
const jsContent = `(function() {
  'use strict';

  // ---- Accordion: at most one entry open; toggling the open one closes it.
  function setOpen(root, open) {
    root.querySelectorAll('.accordion-item').forEach(function(item) {
      var i = parseInt(item.getAttribute('data-index'), 10);
      var expanded = i === open;
      var header = item.querySelector('.accordion-header');
      var body = item.querySelector('.accordion-body');
      var marker = item.querySelector('.accordion-marker');
      item.classList.toggle('is-open', expanded);
      header.setAttribute('aria-expanded', expanded ? 'true' : 'false');
      if (expanded) { body.removeAttribute('hidden'); } else { body.setAttribute('hidden', ''); }
      if (marker) {
        marker.textContent = expanded ? marker.getAttribute('data-expanded') : marker.getAttribute('data-collapsed');
      }
    });
    root.setAttribute('data-open', open === null ? '' : String(open));
  }

  function currentOpen(root) {
    var v = root.getAttribute('data-open');
    if (v === null) {
      var item = root.querySelector('.accordion-item.is-open');
      return item ? parseInt(item.getAttribute('data-index'), 10) : null;
    }
    return v === '' ? null : parseInt(v, 10);
  }

  document.querySelectorAll('[data-accordion]').forEach(function(root) {
    var initial = new URLSearchParams(window.location.search).get('faq');
    if (initial !== null && /^\d+$/.test(initial) && root.querySelector('[data-index="' + initial + '"]')) {
      setOpen(root, parseInt(initial, 10));
    }
    root.addEventListener('click', function(e) {
      var header = e.target.closest('[data-toggle]');
      if (!header || !root.contains(header)) return;
      e.preventDefault();
      var i = parseInt(header.getAttribute('data-toggle'), 10);
      var open = currentOpen(root);
      setOpen(root, open === i ? null : i);
      if (window.fetch && document.body.getAttribute('data-live') !== null) {
        fetch('/api/faq?open=' + (open === i ? '' : i) + '&skin=' + document.body.getAttribute('data-skin')).catch(function() {});
      }
    });
  });

  // ---- Boot sequence.
  var boot = document.getElementById('boot');
  var briefing = document.getElementById('briefing');
  if (!boot || boot.hasAttribute('hidden')) return;

  var screen = document.getElementById('boot-screen');
  var timers = [];
  var socket = null;
  var done = false;

  function el(tag, cls, text) {
    var n = document.createElement(tag);
    if (cls) n.className = cls;
    if (text !== undefined) n.textContent = text;
    return n;
  }

  function draw(frame) {
    screen.textContent = '';
    (frame.lines || []).forEach(function(line) {
      if (!line.visible) return;
      var row = el('div', 'boot-line');
      row.appendChild(el('span', 'boot-prompt', line.prompt));
      row.appendChild(document.createTextNode(line.text));
      if (line.cursor) row.appendChild(el('span', 'boot-cursor', '█'));
      screen.appendChild(row);
      (line.output || []).forEach(function(out) {
        screen.appendChild(el('div', 'boot-line boot-output', out));
      });
    });
    if (frame.complete) unlock();
  }

  function unlock() {
    if (done) return;
    done = true;
    timers.forEach(clearTimeout);
    timers = [];
    if (socket) { socket.close(); socket = null; }
    boot.setAttribute('hidden', '');
    briefing.removeAttribute('hidden');
  }

  boot.querySelector('[data-boot-skip]').addEventListener('click', function(e) {
    e.preventDefault();
    unlock();
  });

  var url = boot.getAttribute('data-boot-url');
  if (url.indexOf('/ws/') === 0) {
    var scheme = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(scheme + window.location.host + url);
    socket.onmessage = function(msg) { draw(JSON.parse(msg.data)); };
    socket.onerror = function() { unlock(); };
    return;
  }

  fetch(url).then(function(r) { return r.json(); }).then(function(timeline) {
    timeline.frames.forEach(function(frame) {
      timers.push(setTimeout(function() { draw(frame); }, frame.at_ms));
    });
  }).catch(function() { unlock(); });

  window.addEventListener('pagehide', function() {
    timers.forEach(clearTimeout);
    timers = [];
  });
})();
`
