package render

// stylesheet is inlined into every page so the output is self-contained.
const stylesheet = `        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            padding: 20px;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 10px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.2);
            padding: 40px;
        }

        .slide {
            position: relative;
            page-break-after: always;
            margin-bottom: 60px;
            padding: 30px;
            background: white;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
            min-height: 600px;
        }

        .slide:last-child {
            page-break-after: auto;
        }

        .slide-number {
            position: absolute;
            top: 10px;
            right: 20px;
            color: #999;
            font-size: 14px;
        }

        h1 {
            color: #667eea;
            text-align: center;
            margin-bottom: 20px;
            font-size: 2.5em;
            border-bottom: 3px solid #667eea;
            padding-bottom: 20px;
        }

        h2 {
            color: #764ba2;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 2em;
            border-left: 5px solid #667eea;
            padding-left: 15px;
        }

        h3 {
            color: #555;
            margin-top: 15px;
            margin-bottom: 10px;
            font-size: 1.5em;
        }

        .slide-title {
            color: #764ba2;
            font-size: 2em;
            margin-bottom: 30px;
            padding-bottom: 15px;
            border-bottom: 2px solid #667eea;
        }

        .slide-content {
            margin-top: 20px;
        }

        .slide-content ul {
            margin-left: 30px;
            margin-top: 15px;
        }

        .slide-content li {
            margin: 10px 0;
            font-size: 1.1em;
            line-height: 1.8;
        }

        .slide-content p {
            margin: 15px 0;
            font-size: 1.1em;
            line-height: 1.8;
        }

        .title-slide {
            text-align: center;
            padding: 80px 40px;
        }

        .title-slide h1 {
            font-size: 3em;
            margin-bottom: 30px;
            border: none;
        }

        .title-slide .slide-content p {
            font-size: 1.5em;
            color: #666;
            line-height: 2;
        }

        .summary {
            margin-top: 40px;
            padding: 20px;
            border-left: 5px solid #764ba2;
            background: #f7f7fb;
        }

        .footer {
            text-align: center;
            margin-top: 40px;
            padding-top: 20px;
            border-top: 2px solid #eee;
            color: #888;
        }

        @media print {
            body {
                background: white;
                padding: 0;
            }

            .container {
                box-shadow: none;
                padding: 0;
            }

            .slide {
                page-break-after: always;
                margin-bottom: 0;
                box-shadow: none;
            }
        }
`
