package access_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
)

// fakeClock is a hand-adjustable time source for freshness-window tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var _ = Describe("FlagCache", func() {
	const (
		softTTL = 10 * time.Minute
		hardTTL = 30 * time.Minute
	)

	var (
		ctx     context.Context
		fetcher *mockFlagFetcher
		clock   *fakeClock
		cache   *access.FlagCache
	)

	orgID := int64(7)

	featureRows := func(invoicingEnabled bool) []model.OrgFeature {
		return []model.OrgFeature{
			{OrganizationID: orgID, Module: model.ModuleInvoicing, Enabled: invoicingEnabled},
			{OrganizationID: orgID, Module: model.ModuleInventory, Enabled: true},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		fetcher = &mockFlagFetcher{}
		clock = &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
		cache = access.NewFlagCache(fetcher, softTTL, hardTTL, access.WithClock(clock.Now))
	})

	It("serves the cached snapshot within the soft window without refetching", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(true), nil
		})

		fs, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeTrue())
		Expect(fetcher.Calls()).To(Equal(1))

		clock.Advance(9 * time.Minute)

		fs, err = cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeTrue())
		Expect(fetcher.Calls()).To(Equal(1))
	})

	It("serves stale and refreshes in the background between soft and hard", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(true), nil
		})

		_, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())

		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(false), nil
		})

		clock.Advance(11 * time.Minute)

		// Soft-stale read returns the old value immediately.
		fs, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeTrue())

		// The background refresh lands shortly after.
		Eventually(fetcher.Calls).Should(Equal(2))
		Eventually(func() bool {
			fs, err := cache.Get(ctx, orgID)
			Expect(err).NotTo(HaveOccurred())
			return fs.ModuleEnabled(model.ModuleInvoicing)
		}).Should(BeFalse())
	})

	It("refetches synchronously past the hard window", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(true), nil
		})

		_, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())

		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(false), nil
		})

		clock.Advance(31 * time.Minute)

		fs, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeFalse())
		Expect(fetcher.Calls()).To(Equal(2))
	})

	It("reflects the refreshed value immediately after invalidation", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(true), nil
		})

		_, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())

		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(false), nil
		})

		cache.Invalidate(orgID)

		fs, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeFalse())
	})

	It("invalidates only the targeted organization", func() {
		otherOrg := int64(8)
		fetcher.SetListFn(func(_ context.Context, id int64) ([]model.OrgFeature, error) {
			return []model.OrgFeature{
				{OrganizationID: id, Module: model.ModuleInvoicing, Enabled: true},
			}, nil
		})

		_, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		_, err = cache.Get(ctx, otherOrg)
		Expect(err).NotTo(HaveOccurred())
		Expect(fetcher.Calls()).To(Equal(2))

		cache.Invalidate(orgID)

		// The other org's entry is untouched.
		_, err = cache.Get(ctx, otherOrg)
		Expect(err).NotTo(HaveOccurred())
		Expect(fetcher.Calls()).To(Equal(2))

		_, err = cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fetcher.Calls()).To(Equal(3))
	})

	It("falls back to module defaults for modules with no row", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return []model.OrgFeature{}, nil
		})

		fs, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())

		Expect(fs.ModuleEnabled(model.ModuleWorkOrders)).To(BeTrue())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeTrue())
		Expect(fs.ModuleEnabled(model.ModuleInventory)).To(BeFalse())
		Expect(fs.ModuleEnabled(model.ModulePointOfSale)).To(BeFalse())
		Expect(fs.ModuleEnabled(model.ModuleCustomerPortal)).To(BeFalse())
	})

	It("propagates fetch errors when there is nothing to serve", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return nil, errors.New("timeout")
		})

		_, err := cache.Get(ctx, orgID)
		Expect(err).To(HaveOccurred())
	})

	It("keeps serving the stale snapshot when a background refresh fails", func() {
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return featureRows(true), nil
		})

		_, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())

		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return nil, errors.New("timeout")
		})

		clock.Advance(11 * time.Minute)

		fs, err := cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeTrue())

		Eventually(fetcher.Calls).Should(Equal(2))

		// Still soft-stale, still serving the old snapshot.
		fs, err = cache.Get(ctx, orgID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.ModuleEnabled(model.ModuleInvoicing)).To(BeTrue())
	})
})
