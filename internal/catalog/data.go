package catalog

import "github.com/mbtq-dev/go-autoapi-backend/internal/domain"

// githubEndpointGroups returns the curated GitHub REST API endpoint groups,
// based on the GitHub API v3 documentation.
func githubEndpointGroups() []domain.APIEntry {
	return []domain.APIEntry{
		{
			API:         "GitHub - Repositories",
			Description: "List, create, update, and delete repositories",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}",
				"GET /user/repos",
				"GET /orgs/{org}/repos",
				"POST /user/repos",
				"PATCH /repos/{owner}/{repo}",
				"DELETE /repos/{owner}/{repo}",
			},
		},
		{
			API:         "GitHub - Issues",
			Description: "Manage issues, comments, labels, and milestones",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/issues",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/issues",
				"GET /repos/{owner}/{repo}/issues/{issue_number}",
				"POST /repos/{owner}/{repo}/issues",
				"PATCH /repos/{owner}/{repo}/issues/{issue_number}",
				"GET /repos/{owner}/{repo}/issues/{issue_number}/comments",
				"POST /repos/{owner}/{repo}/issues/{issue_number}/comments",
			},
		},
		{
			API:         "GitHub - Pull Requests",
			Description: "Create and manage pull requests",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/pulls",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/pulls",
				"GET /repos/{owner}/{repo}/pulls/{pull_number}",
				"POST /repos/{owner}/{repo}/pulls",
				"PATCH /repos/{owner}/{repo}/pulls/{pull_number}",
				"GET /repos/{owner}/{repo}/pulls/{pull_number}/files",
				"POST /repos/{owner}/{repo}/pulls/{pull_number}/reviews",
			},
		},
		{
			API:         "GitHub - Commits",
			Description: "Access commit history and details",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/commits",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/commits",
				"GET /repos/{owner}/{repo}/commits/{ref}",
				"GET /repos/{owner}/{repo}/commits/{sha}",
				"POST /repos/{owner}/{repo}/git/commits",
			},
		},
		{
			API:         "GitHub - Branches",
			Description: "Manage repository branches",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/branches",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/branches",
				"GET /repos/{owner}/{repo}/branches/{branch}",
				"POST /repos/{owner}/{repo}/git/refs",
				"DELETE /repos/{owner}/{repo}/git/refs/{ref}",
			},
		},
		{
			API:         "GitHub - Users",
			Description: "Get user information and manage authentication",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/users",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /user",
				"GET /users/{username}",
				"GET /user/repos",
				"GET /users/{username}/repos",
				"GET /user/followers",
				"GET /user/following",
			},
		},
		{
			API:         "GitHub - Organizations",
			Description: "Manage organization accounts and teams",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/orgs",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /orgs/{org}",
				"GET /user/orgs",
				"GET /orgs/{org}/repos",
				"GET /orgs/{org}/teams",
				"GET /orgs/{org}/members",
			},
		},
		{
			API:         "GitHub - Gists",
			Description: "Create and manage code snippets (gists)",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/gists",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /gists",
				"GET /gists/public",
				"GET /gists/{gist_id}",
				"POST /gists",
				"PATCH /gists/{gist_id}",
				"DELETE /gists/{gist_id}",
			},
		},
		{
			API:         "GitHub - Actions",
			Description: "Manage GitHub Actions workflows and runs",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/actions",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/actions/workflows",
				"GET /repos/{owner}/{repo}/actions/runs",
				"GET /repos/{owner}/{repo}/actions/runs/{run_id}",
				"POST /repos/{owner}/{repo}/actions/workflows/{workflow_id}/dispatches",
			},
		},
		{
			API:         "GitHub - Releases",
			Description: "Manage repository releases and assets",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/releases",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/releases",
				"GET /repos/{owner}/{repo}/releases/latest",
				"GET /repos/{owner}/{repo}/releases/{release_id}",
				"POST /repos/{owner}/{repo}/releases",
				"PATCH /repos/{owner}/{repo}/releases/{release_id}",
			},
		},
		{
			API:         "GitHub - Search",
			Description: "Search for repositories, code, issues, and users",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/search",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /search/repositories",
				"GET /search/code",
				"GET /search/issues",
				"GET /search/users",
				"GET /search/commits",
			},
		},
		{
			API:         "GitHub - Webhooks",
			Description: "Manage repository webhooks and events",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/hooks",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/hooks",
				"GET /repos/{owner}/{repo}/hooks/{hook_id}",
				"POST /repos/{owner}/{repo}/hooks",
				"PATCH /repos/{owner}/{repo}/hooks/{hook_id}",
				"DELETE /repos/{owner}/{repo}/hooks/{hook_id}",
			},
		},
		{
			API:         "GitHub - Contents",
			Description: "Access and modify repository contents",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/contents",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/contents/{path}",
				"PUT /repos/{owner}/{repo}/contents/{path}",
				"DELETE /repos/{owner}/{repo}/contents/{path}",
				"GET /repos/{owner}/{repo}/readme",
			},
		},
		{
			API:         "GitHub - Notifications",
			Description: "Manage user notifications",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/notifications",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /notifications",
				"GET /repos/{owner}/{repo}/notifications",
				"PATCH /notifications/threads/{thread_id}",
				"PUT /notifications",
			},
		},
		{
			API:         "GitHub - Projects",
			Description: "Manage GitHub Projects (project boards)",
			Auth:        "apiKey",
			HTTPS:       true,
			Cors:        "yes",
			Link:        "https://api.github.com/repos/{owner}/{repo}/projects",
			Category:    "Development",
			SubCategory: "GitHub",
			Endpoints: []string{
				"GET /repos/{owner}/{repo}/projects",
				"GET /projects/{project_id}",
				"POST /repos/{owner}/{repo}/projects",
				"PATCH /projects/{project_id}",
			},
		},
	}
}

// enrichedAPIs returns the curated collection of high-quality development
// APIs that round out the catalog.
func enrichedAPIs() []domain.APIEntry {
	return []domain.APIEntry{
		// Version control & code hosting
		{API: "GitLab API", Description: "Complete REST API for GitLab repositories, CI/CD, and DevOps", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://gitlab.com/api/v4", Category: "Development"},
		{API: "Bitbucket API", Description: "Bitbucket Cloud REST API for Git repositories and pipelines", Auth: "OAuth", HTTPS: true, Cors: "yes", Link: "https://api.bitbucket.org/2.0", Category: "Development"},

		// Package registries
		{API: "npm Registry", Description: "Access npm package metadata and registry information", Auth: "", HTTPS: true, Cors: "yes", Link: "https://registry.npmjs.org", Category: "Development"},
		{API: "PyPI API", Description: "Python Package Index API for package information", Auth: "", HTTPS: true, Cors: "yes", Link: "https://pypi.org/pypi", Category: "Development"},
		{API: "crates.io API", Description: "Rust package registry API", Auth: "", HTTPS: true, Cors: "yes", Link: "https://crates.io/api/v1", Category: "Development"},
		{API: "Maven Central", Description: "Search and access Maven packages", Auth: "", HTTPS: true, Cors: "yes", Link: "https://search.maven.org/solrsearch/select", Category: "Development"},

		// Code quality & analysis
		{API: "SonarQube", Description: "Code quality and security analysis platform API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://sonarcloud.io/api", Category: "Development"},
		{API: "Codacy API", Description: "Automated code reviews and code quality analysis", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.codacy.com", Category: "Development"},

		// CI/CD & deployment
		{API: "CircleCI API", Description: "Continuous integration and delivery platform API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://circleci.com/api/v2", Category: "Development"},
		{API: "Travis CI API", Description: "Continuous integration service API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.travis-ci.com", Category: "Development"},
		{API: "Vercel API", Description: "Frontend deployment and hosting platform API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.vercel.com", Category: "Development"},
		{API: "Netlify API", Description: "Web hosting and serverless backend services API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.netlify.com/api/v1", Category: "Development"},

		// Documentation & knowledge
		{API: "Stack Exchange API", Description: "Access Stack Overflow and Stack Exchange sites data", Auth: "OAuth", HTTPS: true, Cors: "yes", Link: "https://api.stackexchange.com/2.3", Category: "Development"},
		{API: "DevDocs API", Description: "Unified API documentation for developers", Auth: "", HTTPS: true, Cors: "yes", Link: "https://devdocs.io/docs.json", Category: "Development"},

		// Containers & cloud
		{API: "Docker Hub API", Description: "Access Docker container images and repositories", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://hub.docker.com/v2", Category: "Development"},
		{API: "Heroku API", Description: "Cloud platform as a service (PaaS) API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.heroku.com", Category: "Development"},

		// API development & testing
		{API: "Postman API", Description: "Manage Postman collections, environments, and mocks", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.getpostman.com", Category: "Development"},
		{API: "Swagger/OpenAPI", Description: "OpenAPI specification for API documentation", Auth: "", HTTPS: true, Cors: "yes", Link: "https://api.apis.guru/v2", Category: "Development"},
		{API: "JSONPlaceholder", Description: "Free fake REST API for testing and prototyping", Auth: "", HTTPS: true, Cors: "yes", Link: "https://jsonplaceholder.typicode.com", Category: "Development"},
		{API: "ReqRes", Description: "Hosted REST API for testing frontend applications", Auth: "", HTTPS: true, Cors: "yes", Link: "https://reqres.in/api", Category: "Development"},

		// Collaboration
		{API: "Slack API", Description: "Team communication and collaboration platform API", Auth: "OAuth", HTTPS: true, Cors: "yes", Link: "https://slack.com/api", Category: "Development"},
		{API: "Discord API", Description: "Voice, video, and text communication platform API", Auth: "OAuth", HTTPS: true, Cors: "yes", Link: "https://discord.com/api", Category: "Development"},

		// Project management
		{API: "Jira API", Description: "Issue and project tracking software API", Auth: "OAuth", HTTPS: true, Cors: "yes", Link: "https://developer.atlassian.com/cloud/jira/platform/rest/v3", Category: "Development"},
		{API: "Trello API", Description: "Kanban-style project management tool API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.trello.com/1", Category: "Development"},
		{API: "Linear API", Description: "Modern issue tracking and project management API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.linear.app/graphql", Category: "Development"},

		// Analytics & monitoring
		{API: "Google Analytics", Description: "Web analytics and reporting API", Auth: "OAuth", HTTPS: true, Cors: "yes", Link: "https://www.googleapis.com/analytics/v3", Category: "Development"},
		{API: "Sentry API", Description: "Error tracking and performance monitoring API", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://sentry.io/api/0", Category: "Development"},

		// Security
		{API: "CVE Details", Description: "Common Vulnerabilities and Exposures database", Auth: "", HTTPS: true, Cors: "unknown", Link: "https://www.cvedetails.com/api", Category: "Development"},
		{API: "Snyk API", Description: "Security vulnerability scanning for dependencies", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.snyk.io/v1", Category: "Development"},

		// Utilities
		{API: "REST Countries", Description: "Get country information via REST API", Auth: "", HTTPS: true, Cors: "yes", Link: "https://restcountries.com/v3.1", Category: "Development"},
		{API: "IP API", Description: "IP address geolocation API", Auth: "", HTTPS: true, Cors: "yes", Link: "https://ipapi.co/json", Category: "Development"},
		{API: "QR Code Generator", Description: "Generate QR codes via API", Auth: "", HTTPS: true, Cors: "yes", Link: "https://api.qrserver.com/v1", Category: "Development"},
		{API: "UUID Generator", Description: "Generate UUIDs via API", Auth: "", HTTPS: true, Cors: "yes", Link: "https://www.uuidgenerator.net/api", Category: "Development"},

		// AI & machine learning
		{API: "OpenAI API", Description: "Access GPT models and AI capabilities", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.openai.com/v1", Category: "Development"},
		{API: "Hugging Face API", Description: "Access ML models and datasets", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api-inference.huggingface.co", Category: "Development"},

		// Data & database
		{API: "JSONbin.io", Description: "JSON storage and retrieval service", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://api.jsonbin.io/v3", Category: "Development"},
		{API: "Supabase API", Description: "Open source Firebase alternative with Postgres database", Auth: "apiKey", HTTPS: true, Cors: "yes", Link: "https://supabase.com/docs/reference/api", Category: "Development"},
	}
}
