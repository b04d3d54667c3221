package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/core/config"
)

var _ = Describe("Load", func() {
	var dir string

	writeEnvFile := func(name, dashboardURL string) {
		content := "DASHBOARD_URL=" + dashboardURL + "\n" +
			"WORKOS_API_KEY=sk_test\n" +
			"WORKOS_CLIENT_ID=client_test\n"
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)).To(Succeed())
	}

	// godotenv never overrides variables already in the process environment,
	// so anything a previous spec's env file introduced has to be cleared.
	clearEnv := func(keys ...string) {
		for _, key := range keys {
			if value, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, value)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			os.Unsetenv(key)
		}
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(dir)).To(Succeed())
		DeferCleanup(os.Chdir, wd)

		clearEnv("ORDERSNAPR_ENV", "DASHBOARD_URL", "WORKOS_API_KEY", "WORKOS_CLIENT_ID")
	})

	It("prefers .env.server over .env in development", func() {
		writeEnvFile(".env.server", "https://server.example.com")
		writeEnvFile(".env", "https://fallback.example.com")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DashboardURL).To(Equal("https://server.example.com"))
	})

	It("falls back to .env when .env.server is absent", func() {
		writeEnvFile(".env", "https://fallback.example.com")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DashboardURL).To(Equal("https://fallback.example.com"))
	})

	It("rejects missing WorkOS credentials", func() {
		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("WORKOS_API_KEY")))
	})
})
