package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/logger"
)

var _ = Describe("TraceHandler", func() {
	var (
		buf *bytes.Buffer
		log *slog.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = slog.New(logger.NewTraceHandler(slog.NewJSONHandler(buf, nil)))
	})

	record := func() map[string]any {
		var out map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &out)).To(Succeed())
		return out
	}

	It("emits the context log fields on every record", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			ProfileID:      logger.Ptr(int64(42)),
			OrganizationID: logger.Ptr(int64(100)),
			WorkspaceID:    logger.Ptr(int64(200)),
			SessionID:      logger.Ptr(int64(9001)),
			Module:         logger.Ptr("invoicing"),
			Component:      "ordersnapr.access.flagcache",
		})

		log.InfoContext(ctx, "flag refresh")

		out := record()
		Expect(out["profile_id"]).To(BeEquivalentTo(42))
		Expect(out["organization_id"]).To(BeEquivalentTo(100))
		Expect(out["workspace_id"]).To(BeEquivalentTo(200))
		Expect(out["session_id"]).To(BeEquivalentTo(9001))
		Expect(out["module"]).To(Equal("invoicing"))
		Expect(out["component"]).To(Equal("ordersnapr.access.flagcache"))
	})

	It("omits fields the context never set", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			ProfileID: logger.Ptr(int64(42)),
		})

		log.InfoContext(ctx, "hello")

		out := record()
		Expect(out["profile_id"]).To(BeEquivalentTo(42))
		Expect(out).NotTo(HaveKey("organization_id"))
		Expect(out).NotTo(HaveKey("module"))
		Expect(out).NotTo(HaveKey("component"))
	})

	It("merges nested enrichment with newer values winning", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			ProfileID: logger.Ptr(int64(42)),
			Component: "ordersnapr.http",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			Module: logger.Ptr("invoicing"),
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			Component: "ordersnapr.access.flagcache",
		})

		log.InfoContext(ctx, "hello")

		out := record()
		Expect(out["profile_id"]).To(BeEquivalentTo(42))
		Expect(out["module"]).To(Equal("invoicing"))
		Expect(out["component"]).To(Equal("ordersnapr.access.flagcache"))
	})
})
