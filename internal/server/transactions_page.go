package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ledgerPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Transactions · FraudLens</title>
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
        .container { max-width: 1100px; margin: 0 auto; padding: 0 24px; }
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

        .page-header {
            padding: 40px 0 24px;
            display: flex; justify-content: space-between; align-items: flex-end;
        }
        .page-title { font-size: 24px; font-weight: 600; margin-bottom: 4px; }
        .page-desc { color: var(--text-secondary); }
        .refresh-btn {
            background: var(--bg-subtle); border: 1px solid var(--border);
            color: var(--text); padding: 8px 16px; border-radius: 8px;
            font-size: 13px; cursor: pointer; transition: border-color 0.15s;
        }
        .refresh-btn:hover { border-color: var(--accent); }

        .table-card { background: var(--bg-subtle); border: 1px solid var(--border); border-radius: 10px; padding: 20px; margin-bottom: 48px; }
        table { width: 100%; border-collapse: collapse; }
        th { text-align: left; font-size: 11px; color: var(--text-tertiary); text-transform: uppercase; padding: 8px 12px; border-bottom: 1px solid var(--border); }
        td { padding: 12px; border-bottom: 1px solid var(--border); font-size: 13px; }
        tr:last-child td { border-bottom: none; }
        .risk-badge { padding: 2px 10px; border-radius: 10px; font-size: 11px; font-weight: 600; }
        .risk-badge.high { background: rgba(245, 101, 101, 0.15); color: var(--high); }
        .risk-badge.medium { background: rgba(237, 137, 54, 0.15); color: var(--medium); }
        .risk-badge.low { background: rgba(72, 187, 120, 0.15); color: var(--low); }
        .status-badge { padding: 2px 10px; border-radius: 10px; font-size: 11px; }
        .status-badge.flagged { background: rgba(245, 101, 101, 0.15); color: var(--high); }
        .status-badge.pending { background: rgba(237, 137, 54, 0.15); color: var(--medium); }
        .status-badge.approved { background: rgba(72, 187, 120, 0.15); color: var(--low); }
        .status-badge.blocked { background: rgba(155, 161, 174, 0.15); color: var(--text-secondary); }
        .empty { text-align: center; padding: 40px; color: var(--text-tertiary); }

        footer { border-top: 1px solid var(--border); padding: 24px 0; text-align: center; color: var(--text-tertiary); font-size: 13px; }
        footer a { color: var(--text-secondary); text-decoration: none; margin: 0 12px; }
    </style>
</head>
<body>
    <header><div class="container header-inner">
        <a href="/" class="logo"><div class="logo-mark"></div><span class="logo-text">FraudLens</span></a>
        <nav>
            <a href="/">Dashboard</a>
            <a href="/transactions" class="active">Transactions</a>
            <a href="/feed">Feed</a>
            <a href="/assess">Assess</a>
        </nav>
    </div></header>
    <main class="container">
        <div class="page-header">
            <div>
                <h1 class="page-title">Transaction Ledger</h1>
                <p class="page-desc">Recent transactions with risk scores</p>
            </div>
            <button class="refresh-btn" onclick="load()">Refresh</button>
        </div>
        <div class="table-card">
            <table>
                <thead><tr><th>ID</th><th>Date</th><th>Amount</th><th>Customer</th><th>Location</th><th>Risk</th><th>Status</th></tr></thead>
                <tbody id="rows"><tr><td colspan="7" class="empty">Loading transactions...</td></tr></tbody>
            </table>
        </div>
    </main>
    <footer><div class="container"><a href="/v1/transactions">API</a><a href="/">Dashboard</a></div></footer>
    <script>
        function load() {
            fetch('/v1/transactions').then(r => r.json()).then(data => {
                const rows = data.transactions;
                if (!rows.length) {
                    document.getElementById('rows').innerHTML = '<tr><td colspan="7" class="empty">No transactions</td></tr>';
                    return;
                }
                document.getElementById('rows').innerHTML = rows.map(tx =>
                    '<tr>'+
                        '<td class="mono">'+tx.id+'</td>'+
                        '<td>'+tx.date+'</td>'+
                        '<td class="mono">'+tx.amount+'</td>'+
                        '<td>'+tx.customer+'</td>'+
                        '<td>'+tx.location+'</td>'+
                        '<td><span class="risk-badge '+tx.riskBadge+'">'+tx.riskScore+'</span></td>'+
                        '<td><span class="status-badge '+tx.statusClass+'">'+tx.status+'</span></td>'+
                    '</tr>'
                ).join('');
            });
        }
        load();
    </script>
</body>
</html>`

func ledgerPageHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, ledgerPageHTML)
}
