package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const assessPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Assess · FraudLens</title>
    <link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>◎</text></svg>">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=JetBrains+Mono:wght@400;500&display=swap" rel="stylesheet">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        :root {
            --bg: #0f1117; --bg-subtle: #1a1d27; --border: #2a2e3b;
            --text: #f7f8fa; --text-secondary: #9ba1ae; --text-tertiary: #5b6170;
            --accent: #667eea; --high: #f56565; --medium: #ed8936; --low: #48bb78;
        }
        body {
            font-family: 'Inter', -apple-system, sans-serif;
            background: var(--bg); color: var(--text);
            min-height: 100vh; font-size: 14px;
            -webkit-font-smoothing: antialiased;
        }
        .mono { font-family: 'JetBrains Mono', monospace; }
        .container { max-width: 900px; margin: 0 auto; padding: 0 24px; }
        header {
            border-bottom: 1px solid var(--border); padding: 16px 0;
            position: sticky; top: 0; background: var(--bg); z-index: 100;
        }
        .header-inner { display: flex; justify-content: space-between; align-items: center; }
        .logo { display: flex; align-items: center; gap: 10px; text-decoration: none; color: var(--text); }
        .logo-mark { width: 24px; height: 24px; background: linear-gradient(135deg, var(--accent), #764ba2); border-radius: 6px; }
        .logo-text { font-weight: 600; font-size: 15px; }
        nav { display: flex; gap: 32px; }
        nav a { color: var(--text-secondary); text-decoration: none; font-size: 13px; transition: color 0.15s; }
        nav a:hover, nav a.active { color: var(--text); }

        .page-header { padding: 40px 0 24px; }
        .page-title { font-size: 24px; font-weight: 600; margin-bottom: 4px; }
        .page-desc { color: var(--text-secondary); }

        .layout { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; margin-bottom: 48px; }
        .card { background: var(--bg-subtle); border: 1px solid var(--border); border-radius: 10px; padding: 24px; }
        .card h3 { font-size: 14px; font-weight: 600; margin-bottom: 20px; }

        .field { margin-bottom: 16px; }
        .field label { display: block; font-size: 12px; color: var(--text-secondary); margin-bottom: 6px; }
        .field input, .field select {
            width: 100%; background: var(--bg); border: 1px solid var(--border);
            color: var(--text); padding: 10px 12px; border-radius: 8px; font-size: 14px;
            font-family: inherit;
        }
        .field input:focus, .field select:focus { outline: none; border-color: var(--accent); }
        .field-error { color: var(--high); font-size: 12px; margin-top: 4px; display: none; }
        .submit-btn {
            width: 100%; background: linear-gradient(135deg, var(--accent), #764ba2);
            border: none; color: #fff; padding: 12px; border-radius: 8px;
            font-size: 14px; font-weight: 600; cursor: pointer; margin-top: 8px;
        }
        .submit-btn:hover { opacity: 0.9; }

        .result-card { display: flex; flex-direction: column; align-items: center; }
        .gauge-wrap { position: relative; width: 200px; height: 200px; margin: 12px 0; }
        .gauge-wrap svg { transform: rotate(-90deg); }
        .gauge-track { fill: none; stroke: var(--border); stroke-width: 10; }
        .gauge-ring { fill: none; stroke: url(#ringGradient); stroke-width: 10; stroke-linecap: round; transition: stroke-dashoffset 0.05s linear; }
        .gauge-value {
            position: absolute; inset: 0; display: flex; flex-direction: column;
            align-items: center; justify-content: center;
        }
        .gauge-score { font-size: 42px; font-weight: 700; }
        .gauge-label { font-size: 11px; color: var(--text-tertiary); text-transform: uppercase; letter-spacing: 0.05em; }
        .result-status { font-size: 14px; font-weight: 600; padding: 8px 16px; border-radius: 8px; margin-bottom: 20px; text-align: center; }
        .result-status.high-risk { background: rgba(245, 101, 101, 0.15); color: var(--high); }
        .result-status.medium-risk { background: rgba(237, 137, 54, 0.15); color: var(--medium); }
        .result-status.low-risk { background: rgba(72, 187, 120, 0.15); color: var(--low); }
        .result-status.idle { background: var(--bg); color: var(--text-tertiary); }

        .factors { width: 100%; }
        .factor { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid var(--border); font-size: 13px; }
        .factor:last-child { border-bottom: none; }
        .factor-name { color: var(--text-secondary); }
        .factor-impact { font-weight: 600; text-transform: capitalize; }
        .factor-impact.high { color: var(--high); }
        .factor-impact.medium { color: var(--medium); }
        .factor-impact.low { color: var(--low); }

        footer { border-top: 1px solid var(--border); padding: 24px 0; text-align: center; color: var(--text-tertiary); font-size: 13px; }
        footer a { color: var(--text-secondary); text-decoration: none; margin: 0 12px; }
    </style>
</head>
<body>
    <header><div class="container header-inner">
        <a href="/" class="logo"><div class="logo-mark"></div><span class="logo-text">FraudLens</span></a>
        <nav>
            <a href="/">Dashboard</a>
            <a href="/transactions">Transactions</a>
            <a href="/feed">Feed</a>
            <a href="/assess" class="active">Assess</a>
        </nav>
    </div></header>
    <main class="container">
        <div class="page-header">
            <h1 class="page-title">Risk Assessment</h1>
            <p class="page-desc">Score a transaction against the fraud rule set</p>
        </div>
        <div class="layout">
            <div class="card">
                <h3>Transaction Details</h3>
                <form id="assessForm">
                    <div class="field">
                        <label for="amount">Amount (USD)</label>
                        <input type="number" id="amount" step="0.01" min="0.01" value="250" required>
                        <div class="field-error" id="err-amount"></div>
                    </div>
                    <div class="field">
                        <label for="age">Customer Age</label>
                        <input type="number" id="age" min="0" max="130" value="35" required>
                        <div class="field-error" id="err-age"></div>
                    </div>
                    <div class="field">
                        <label for="hour">Hour of Day (0-23)</label>
                        <input type="number" id="hour" min="0" max="23" value="14" required>
                        <div class="field-error" id="err-hour"></div>
                    </div>
                    <div class="field">
                        <label for="location">Location Risk</label>
                        <select id="location">
                            <option value="low">Low risk region</option>
                            <option value="medium">Medium risk region</option>
                            <option value="high">High risk region</option>
                        </select>
                        <div class="field-error" id="err-location"></div>
                    </div>
                    <div class="field">
                        <label for="device">Device Type</label>
                        <select id="device">
                            <option value="other">Desktop / other</option>
                            <option value="mobile">Mobile</option>
                        </select>
                        <div class="field-error" id="err-device"></div>
                    </div>
                    <div class="field">
                        <label for="payment">Payment Method</label>
                        <select id="payment">
                            <option value="other">Card / transfer</option>
                            <option value="crypto">Cryptocurrency</option>
                        </select>
                        <div class="field-error" id="err-payment"></div>
                    </div>
                    <button type="submit" class="submit-btn">Analyze Transaction</button>
                </form>
            </div>
            <div class="card result-card">
                <h3>Risk Score</h3>
                <div class="gauge-wrap">
                    <svg width="200" height="200" viewBox="0 0 100 100">
                        <defs>
                            <linearGradient id="ringGradient" x1="0%" y1="0%" x2="100%" y2="100%">
                                <stop offset="0%" stop-color="#48bb78" id="gradFrom"/>
                                <stop offset="100%" stop-color="#38a169" id="gradTo"/>
                            </linearGradient>
                        </defs>
                        <circle class="gauge-track" cx="50" cy="50" r="45"/>
                        <circle class="gauge-ring" id="ring" cx="50" cy="50" r="45"
                            stroke-dasharray="283" stroke-dashoffset="283"/>
                    </svg>
                    <div class="gauge-value">
                        <div class="gauge-score" id="scoreValue">0</div>
                        <div class="gauge-label">of 100</div>
                    </div>
                </div>
                <div class="result-status idle" id="resultStatus">Submit a transaction to see its score</div>
                <div class="factors" id="factors"></div>
            </div>
        </div>
    </main>
    <footer><div class="container"><a href="/v1/assess">API</a><a href="/">Dashboard</a></div></footer>
    <script>
        const ring = document.getElementById('ring');
        const scoreValue = document.getElementById('scoreValue');
        const resultStatus = document.getElementById('resultStatus');
        const factorsEl = document.getElementById('factors');

        // One timer handle for the countup. Cleared before every new animation
        // so rapid re-submits never run two countups against the same gauge.
        let animTimer = null;

        function clearErrors() {
            document.querySelectorAll('.field-error').forEach(el => {
                el.style.display = 'none';
                el.textContent = '';
            });
        }

        function showErrors(fields) {
            fields.forEach(f => {
                const el = document.getElementById('err-' + f.field);
                if (el) { el.textContent = f.message; el.style.display = 'block'; }
            });
        }

        function playFrames(frames) {
            if (animTimer !== null) clearInterval(animTimer);
            let i = 0;
            animTimer = setInterval(() => {
                if (i >= frames.length) {
                    clearInterval(animTimer);
                    animTimer = null;
                    return;
                }
                scoreValue.textContent = frames[i].value;
                ring.style.strokeDashoffset = frames[i].offset;
                i++;
            }, 20);
        }

        function renderResult(view) {
            document.getElementById('gradFrom').setAttribute('stop-color', view.gradient.from);
            document.getElementById('gradTo').setAttribute('stop-color', view.gradient.to);
            resultStatus.className = 'result-status ' + view.statusClass;
            resultStatus.textContent = view.statusLine;
            factorsEl.innerHTML = view.factors.map(f =>
                '<div class="factor">'+
                    '<span class="factor-name">'+f.name+'</span>'+
                    '<span class="factor-impact '+f.impact+'">'+f.impact+'</span>'+
                '</div>'
            ).join('');
            playFrames(view.frames);
        }

        document.getElementById('assessForm').addEventListener('submit', e => {
            e.preventDefault();
            clearErrors();

            fetch('/v1/assess', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({
                    amount: parseFloat(document.getElementById('amount').value),
                    age: parseInt(document.getElementById('age').value, 10),
                    hour: parseInt(document.getElementById('hour').value, 10),
                    location: document.getElementById('location').value,
                    device: document.getElementById('device').value,
                    payment: document.getElementById('payment').value,
                }),
            }).then(r => r.json().then(body => ({ ok: r.ok, body }))).then(({ ok, body }) => {
                if (!ok) {
                    if (body.fields) showErrors(body.fields);
                    return;
                }
                renderResult(body);
            });
        });
    </script>
</body>
</html>`

func assessPageHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, assessPageHTML)
}
