// Package deploy generates static deployment files for the portfolio
// server: container build files, a reverse-proxy site config, and a
// process-manager unit. Pure text generation, no runtime coupling.
package deploy

import (
	"os"
	"path/filepath"
)

const dockerfile = `FROM golang:1.24-alpine AS build

WORKDIR /src

RUN apk add --no-cache gcc musl-dev

COPY go.mod go.sum ./
RUN go mod download

COPY . .
RUN CGO_ENABLED=1 go build -o /bin/server ./cmd/server
RUN CGO_ENABLED=1 go build -o /bin/portfolio ./cmd/portfolio

FROM alpine:3.20

WORKDIR /app

COPY --from=build /bin/server /bin/portfolio /usr/local/bin/
COPY migrations ./migrations
COPY web ./web

RUN addgroup -S app && adduser -S app -G app \
    && chown -R app:app /app
USER app

EXPOSE 8080

HEALTHCHECK --interval=30s --timeout=30s --start-period=5s --retries=3 \
    CMD wget -qO- http://localhost:8080/health || exit 1

CMD ["server"]
`

const dockerCompose = `services:
  portfolio:
    build: .
    ports:
      - "8080:8080"
    environment:
      - GIN_MODE=release
      - DB_PATH=/data/portfolio.db
      - LOG_LEVEL=info
    volumes:
      - portfolio-data:/data
    restart: unless-stopped

volumes:
  portfolio-data:
`

const dockerignore = `.git
*.db
*.db-shm
*.db-wal
*.md
web/static/**/*.gz
`

const nginxConf = `server {
    listen 80;
    server_name _;

    gzip on;
    gzip_types text/css application/javascript application/json;
    gzip_static on;

    location /static/ {
        alias /app/web/static/;
        expires 7d;
        add_header Cache-Control "public";
    }

    location / {
        proxy_pass http://127.0.0.1:8080;
        proxy_set_header Host $host;
        proxy_set_header X-Real-IP $remote_addr;
        proxy_set_header X-Forwarded-For $proxy_add_x_forwarded_for;
        proxy_set_header X-Forwarded-Proto $scheme;
    }
}
`

const systemdUnit = `[Unit]
Description=Portfolio web server
After=network.target

[Service]
Type=simple
User=portfolio
WorkingDirectory=/opt/portfolio
ExecStart=/opt/portfolio/server
Restart=on-failure
RestartSec=5
Environment=GIN_MODE=release
Environment=PORT=8080

[Install]
WantedBy=multi-user.target
`

const procfile = `web: ./server
`

// Artifact is one generated deployment file
type Artifact struct {
	Name    string
	Content string
}

// Artifacts returns every deployment file the generator knows how to emit
func Artifacts() []Artifact {
	return []Artifact{
		{Name: "Dockerfile", Content: dockerfile},
		{Name: "docker-compose.yml", Content: dockerCompose},
		{Name: ".dockerignore", Content: dockerignore},
		{Name: "nginx.conf", Content: nginxConf},
		{Name: "portfolio.service", Content: systemdUnit},
		{Name: "Procfile", Content: procfile},
	}
}

// WriteArtifacts writes every artifact into dir and returns the file names
func WriteArtifacts(dir string) ([]string, error) {
	var written []string
	for _, artifact := range Artifacts() {
		path := filepath.Join(dir, artifact.Name)
		if err := os.WriteFile(path, []byte(artifact.Content), 0644); err != nil {
			return written, err
		}
		written = append(written, artifact.Name)
	}
	return written, nil
}
