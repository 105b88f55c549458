package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const dashboardPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Dashboard · FraudLens</title>
    <link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>◎</text></svg>">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=JetBrains+Mono:wght@400;500&display=swap" rel="stylesheet">
    <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
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

        .page-header { padding: 40px 0 24px; }
        .page-title { font-size: 24px; font-weight: 600; margin-bottom: 4px; }
        .page-desc { color: var(--text-secondary); }

        .stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; margin-bottom: 32px; }
        .stat-card {
            background: var(--bg-subtle); border: 1px solid var(--border);
            border-radius: 10px; padding: 20px; transition: transform 0.15s;
        }
        .stat-card:hover { transform: translateY(-2px); }
        .stat-label { font-size: 12px; color: var(--text-secondary); text-transform: uppercase; letter-spacing: 0.05em; }
        .stat-value { font-size: 28px; font-weight: 700; margin-top: 8px; }
        .stat-value.flagged { color: var(--high); }
        .stat-value.review { color: var(--medium); }
        .stat-value.rate { color: var(--low); }

        .charts { display: grid; grid-template-columns: 2fr 1fr; gap: 16px; margin-bottom: 32px; }
        .chart-card {
            background: var(--bg-subtle); border: 1px solid var(--border);
            border-radius: 10px; padding: 20px;
        }
        .chart-card h3 { font-size: 14px; font-weight: 600; margin-bottom: 16px; }
        .chart-wrap { position: relative; height: 260px; }
        .chart-card.wide { grid-column: 1 / -1; }
        .chart-card.wide .chart-wrap { height: 220px; }

        .table-card { background: var(--bg-subtle); border: 1px solid var(--border); border-radius: 10px; padding: 20px; margin-bottom: 48px; }
        .table-card h3 { font-size: 14px; font-weight: 600; margin-bottom: 16px; }
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
            <a href="/" class="active">Dashboard</a>
            <a href="/transactions">Transactions</a>
            <a href="/feed">Feed</a>
            <a href="/assess">Assess</a>
        </nav>
    </div></header>
    <main class="container">
        <div class="page-header">
            <h1 class="page-title">Fraud Detection Overview</h1>
            <p class="page-desc">Transaction monitoring and risk scoring at a glance</p>
        </div>
        <div class="stats">
            <div class="stat-card"><div class="stat-label">Total Transactions</div><div class="stat-value" id="statTotal" data-target="0">0</div></div>
            <div class="stat-card"><div class="stat-label">Flagged</div><div class="stat-value flagged" id="statFlagged" data-target="0">0</div></div>
            <div class="stat-card"><div class="stat-label">Under Review</div><div class="stat-value review" id="statReview" data-target="0">0</div></div>
            <div class="stat-card"><div class="stat-label">Detection Rate</div><div class="stat-value rate" id="statRate">—</div></div>
        </div>
        <div class="charts">
            <div class="chart-card"><h3>Weekly Transaction Trend</h3><div class="chart-wrap"><canvas id="trendChart"></canvas></div></div>
            <div class="chart-card"><h3>Risk Distribution</h3><div class="chart-wrap"><canvas id="distChart"></canvas></div></div>
            <div class="chart-card wide"><h3>Model Performance</h3><div class="chart-wrap"><canvas id="perfChart"></canvas></div></div>
        </div>
        <div class="table-card">
            <h3>Recent High-Risk Transactions</h3>
            <table>
                <thead><tr><th>ID</th><th>Time</th><th>Amount</th><th>Customer</th><th>Risk</th><th>Status</th></tr></thead>
                <tbody id="highRiskRows"><tr><td colspan="6" class="empty">Loading...</td></tr></tbody>
            </table>
        </div>
    </main>
    <footer><div class="container"><a href="/v1/overview">API</a><a href="/metrics">Metrics</a><a href="/health">Health</a></div></footer>
    <script>
        // Animated countup for a stat card, roughly 1.5s at 60fps.
        function countUp(el, target) {
            const increment = target / (1500 / 16);
            let current = 0;
            const timer = setInterval(() => {
                current += increment;
                if (current >= target) {
                    el.textContent = target.toLocaleString();
                    clearInterval(timer);
                } else {
                    el.textContent = Math.floor(current).toLocaleString();
                }
            }, 16);
        }

        function loadOverview() {
            fetch('/v1/overview').then(r => r.json()).then(data => {
                countUp(document.getElementById('statTotal'), data.stats.totalTransactions);
                countUp(document.getElementById('statFlagged'), data.stats.flagged);
                countUp(document.getElementById('statReview'), data.stats.underReview);
                document.getElementById('statRate').textContent = data.stats.detectionRate.toFixed(1) + '%';
            });
        }

        function buildChart(id, desc) {
            new Chart(document.getElementById(id), {
                type: desc.type,
                data: { labels: desc.labels, datasets: desc.datasets },
                options: Object.assign({
                    responsive: true, maintainAspectRatio: false,
                    plugins: { legend: { labels: { color: '#9ba1ae' } } },
                }, desc.options || {}),
            });
        }

        function loadCharts() {
            fetch('/v1/charts').then(r => r.json()).then(data => {
                buildChart('trendChart', data.trend);
                buildChart('distChart', data.riskDistribution);
                buildChart('perfChart', data.performance);
            });
        }

        function loadHighRisk() {
            fetch('/v1/transactions/high-risk').then(r => r.json()).then(data => {
                const rows = data.transactions;
                if (!rows.length) {
                    document.getElementById('highRiskRows').innerHTML = '<tr><td colspan="6" class="empty">No high-risk transactions</td></tr>';
                    return;
                }
                document.getElementById('highRiskRows').innerHTML = rows.map(tx =>
                    '<tr>'+
                        '<td class="mono">'+tx.id+'</td>'+
                        '<td>'+tx.date+'</td>'+
                        '<td class="mono">'+tx.amount+'</td>'+
                        '<td>'+tx.customer+'</td>'+
                        '<td><span class="risk-badge '+tx.riskBadge+'">'+tx.riskScore+'</span></td>'+
                        '<td><span class="status-badge '+tx.statusClass+'">'+tx.status+'</span></td>'+
                    '</tr>'
                ).join('');
            });
        }

        loadOverview();
        loadCharts();
        loadHighRisk();
        setInterval(loadHighRisk, 30000);
    </script>
</body>
</html>`

func dashboardPageHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, dashboardPageHTML)
}
