package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const feedPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Live Feed · FraudLens</title>
    <link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>◎</text></svg>">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&family=JetBrains+Mono:wght@400;500&display=swap" rel="stylesheet">
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
        .container { max-width: 720px; margin: 0 auto; padding: 0 24px; }
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

        .feed-header {
            padding: 40px 0 24px;
            display: flex; justify-content: space-between; align-items: flex-end;
            border-bottom: 1px solid var(--border);
        }
        .feed-title { font-size: 24px; font-weight: 600; margin-bottom: 4px; }
        .feed-desc { color: var(--text-secondary); }
        .live-badge {
            display: flex; align-items: center; gap: 8px;
            background: var(--bg-subtle); border: 1px solid var(--border);
            padding: 8px 14px; border-radius: 20px; font-size: 13px; color: var(--text-secondary);
        }
        .live-dot {
            width: 8px; height: 8px; background: var(--low); border-radius: 50%;
            animation: pulse 2s ease-in-out infinite;
        }
        @keyframes pulse { 0%, 100% { opacity: 1; } 50% { opacity: 0.4; } }

        .feed-list { padding: 0; }
        .feed-item {
            display: grid; grid-template-columns: 1fr auto;
            gap: 16px; padding: 18px 0; border-bottom: 1px solid var(--border);
            align-items: center;
        }
        .feed-item.new { animation: slideIn 0.3s ease-out; }
        @keyframes slideIn { from { opacity: 0; transform: translateY(-8px); } to { opacity: 1; transform: translateY(0); } }
        .feed-id { font-weight: 500; margin-bottom: 4px; }
        .feed-time { font-size: 12px; color: var(--text-tertiary); }
        .feed-right { text-align: right; }
        .feed-amount { font-size: 16px; font-weight: 600; }
        .risk-badge { padding: 2px 10px; border-radius: 10px; font-size: 11px; font-weight: 600; margin-top: 4px; display: inline-block; }
        .risk-badge.high { background: rgba(245, 101, 101, 0.15); color: var(--high); }
        .risk-badge.medium { background: rgba(237, 137, 54, 0.15); color: var(--medium); }
        .risk-badge.low { background: rgba(72, 187, 120, 0.15); color: var(--low); }
        .empty { text-align: center; padding: 80px 24px; color: var(--text-tertiary); }

        footer { border-top: 1px solid var(--border); padding: 24px 0; margin-top: 48px; text-align: center; color: var(--text-tertiary); font-size: 13px; }
        footer a { color: var(--text-secondary); text-decoration: none; margin: 0 12px; }
    </style>
</head>
<body>
    <header><div class="container header-inner">
        <a href="/" class="logo"><div class="logo-mark"></div><span class="logo-text">FraudLens</span></a>
        <nav>
            <a href="/">Dashboard</a>
            <a href="/transactions">Transactions</a>
            <a href="/feed" class="active">Feed</a>
            <a href="/assess">Assess</a>
        </nav>
    </div></header>
    <main class="container">
        <div class="feed-header">
            <div>
                <h1 class="feed-title">Live Transaction Feed</h1>
                <p class="feed-desc">Incoming transactions scored in real time</p>
            </div>
            <div class="live-badge"><span class="live-dot"></span> Live</div>
        </div>
        <div class="feed-list" id="feed"><div class="empty">Loading feed...</div></div>
    </main>
    <footer><div class="container"><a href="/v1/feed">API</a><a href="/">Dashboard</a></div></footer>
    <script>
        let lastHead = '';

        function render(events) {
            if (!events?.length) return '<div class="empty">No events yet.</div>';
            return events.map((e, i) =>
                '<div class="feed-item'+(i === 0 && e.id !== lastHead ? ' new' : '')+'">'+
                    '<div>'+
                        '<div class="feed-id mono">'+e.id+'</div>'+
                        '<div class="feed-time">'+e.time+'</div>'+
                    '</div>'+
                    '<div class="feed-right">'+
                        '<div class="feed-amount mono">'+e.amount+'</div>'+
                        '<span class="risk-badge '+e.badge+'">Risk '+e.risk+'</span>'+
                    '</div>'+
                '</div>'
            ).join('');
        }

        function load() {
            fetch('/v1/feed').then(r => r.json()).then(data => {
                document.getElementById('feed').innerHTML = render(data.events);
                if (data.events.length) lastHead = data.events[0].id;
            });
        }

        // WebSocket push triggers an immediate refresh; polling is the fallback.
        function connect() {
            const proto = location.protocol === 'https:' ? 'wss' : 'ws';
            const ws = new WebSocket(proto + '://' + location.host + '/v1/ws');
            ws.onopen = () => ws.send(JSON.stringify({ eventTypes: ['feed_transaction'] }));
            ws.onmessage = () => load();
            ws.onclose = () => setTimeout(connect, 5000);
        }

        load();
        connect();
        setInterval(load, 5000);
    </script>
</body>
</html>`

func feedPageHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, feedPageHTML)
}
