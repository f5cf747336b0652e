package keywords

// DefaultVersion tags the built-in keyword data.
const DefaultVersion = "2024.1"

// Default returns a fresh copy of the built-in keyword library.
func Default() (lib *Library) {
	lib = &Library{
		Version: DefaultVersion,
		Roles: map[string][]string{
			RoleFrontend: {
				"react", "useeffect", "usestate", "usememo", "usecallback", "hook", "component", "props",
				"state", "virtual dom", "jsx", "javascript", "typescript", "css", "html", "render",
				"lifecycle", "cleanup", "dependency array", "side effect", "memoization", "redux",
				"context api", "webpack", "vite", "accessibility", "responsive", "browser", "event loop",
				"closure", "promise", "next.js", "vue", "angular", "lazy loading", "code splitting",
				"hydration", "server-side rendering",
			},
			RoleBackend: {
				"rest", "graphql", "grpc", "sql", "nosql", "postgresql", "mysql", "mongodb", "redis",
				"index", "transaction", "acid", "normalization", "schema", "orm", "query", "join",
				"sharding", "replication", "consistency", "eventual consistency", "cap theorem",
				"message queue", "kafka", "microservices", "authentication", "authorization", "jwt",
				"rate limiting", "concurrency", "goroutine", "thread", "connection pool", "idempotent",
				"load balancer", "node.js", "java", "python", "golang",
			},
			RoleFullstack: {
				"react", "node.js", "rest", "graphql", "sql", "nosql", "state management", "component",
				"api gateway", "authentication", "session", "cookie", "cors", "server-side rendering",
				"typescript", "javascript", "orm", "deployment", "ci/cd", "docker", "websocket",
				"end-to-end", "database", "frontend", "backend",
			},
			RoleDataScience: {
				"pandas", "numpy", "regression", "classification", "clustering", "feature engineering",
				"overfitting", "cross-validation", "precision", "recall", "f1", "neural network",
				"gradient descent", "random forest", "xgboost", "hyperparameter", "training set",
				"test set", "bias", "variance", "sql", "etl", "data pipeline", "statistics",
				"hypothesis", "a/b test", "scikit-learn", "tensorflow", "pytorch", "visualization",
			},
			RoleDevOps: {
				"docker", "kubernetes", "helm", "terraform", "ansible", "ci/cd", "pipeline", "jenkins",
				"github actions", "aws", "gcp", "azure", "monitoring", "prometheus", "grafana",
				"logging", "alerting", "sre", "slo", "incident", "rollback", "blue-green", "canary",
				"infrastructure as code", "container", "pod", "autoscaling", "load balancer", "linux",
				"networking", "dns",
			},
			RoleGeneral: {
				"problem solving", "communication", "teamwork", "ownership", "deadline", "stakeholder",
				"prioritization", "conflict", "mentoring", "learning",
			},
		},
		General: []string{
			"algorithm", "data structure", "complexity", "performance", "scalability", "testing",
			"debugging", "optimization", "architecture", "design pattern", "api", "database",
			"caching", "security", "version control", "trade-off", "monitoring", "refactoring",
			"documentation", "code review", "collaboration", "stakeholder", "deadline", "team",
			"leadership", "communication", "problem solving", "feedback", "ownership", "impact",
		},
	}
	return lib
}
