package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

var _ = Describe("WorkOrderService", func() {
	var (
		svc        service.WorkOrderService
		workOrders *mockWorkOrderStore
		profiles   *mockProfileStore
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		workOrders = &mockWorkOrderStore{}
		profiles = &mockProfileStore{}
		profiles.getByIDFn = func(_ context.Context, pid int64) (*model.Profile, error) {
			return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusApproved}, nil
		}
		svc = service.NewWorkOrderService(workOrders, access.NewEvaluator(profiles))
		Expect(id.Init(1)).To(Succeed())
	})

	existing := func(status model.WorkOrderStatus) {
		workOrders.getByIDFn = func(_ context.Context, woID int64) (*model.WorkOrder, error) {
			return &model.WorkOrder{
				ID:        woID,
				ProfileID: 1,
				Title:     "Fix heater",
				Status:    status,
				Priority:  model.WorkOrderPriorityNormal,
			}, nil
		}
	}

	update := func(next model.WorkOrderStatus) (*model.WorkOrder, error) {
		return svc.Update(ctx, 1, 10, service.UpdateWorkOrderInput{
			Title:    "Fix heater",
			Status:   next,
			Priority: model.WorkOrderPriorityNormal,
		})
	}

	Describe("Create", func() {
		It("starts open with normal priority by default", func() {
			wo, err := svc.Create(ctx, 1, service.CreateWorkOrderInput{Title: "Fix heater"})
			Expect(err).NotTo(HaveOccurred())
			Expect(wo.Status).To(Equal(model.WorkOrderStatusOpen))
			Expect(wo.Priority).To(Equal(model.WorkOrderPriorityNormal))
		})

		It("rejects unknown priorities", func() {
			_, err := svc.Create(ctx, 1, service.CreateWorkOrderInput{Title: "x", Priority: "asap"})
			Expect(err).To(MatchError(service.ErrInvalidPriority))
		})
	})

	Describe("status transitions", func() {
		It("moves open to in_progress", func() {
			existing(model.WorkOrderStatusOpen)
			wo, err := update(model.WorkOrderStatusInProgress)
			Expect(err).NotTo(HaveOccurred())
			Expect(wo.Status).To(Equal(model.WorkOrderStatusInProgress))
		})

		It("stamps CompletedAt when completing", func() {
			existing(model.WorkOrderStatusInProgress)
			wo, err := update(model.WorkOrderStatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(wo.CompletedAt).NotTo(BeNil())
		})

		It("treats completed as terminal", func() {
			existing(model.WorkOrderStatusCompleted)
			_, err := update(model.WorkOrderStatusOpen)
			Expect(err).To(MatchError(service.ErrInvalidTransition))
			Expect(workOrders.updateCalls).To(BeZero())
		})

		It("treats cancelled as terminal", func() {
			existing(model.WorkOrderStatusCancelled)
			_, err := update(model.WorkOrderStatusInProgress)
			Expect(err).To(MatchError(service.ErrInvalidTransition))
		})
	})

	Describe("ownership", func() {
		It("hides another profile's work order", func() {
			workOrders.getByIDFn = func(_ context.Context, woID int64) (*model.WorkOrder, error) {
				return &model.WorkOrder{ID: woID, ProfileID: 999, Status: model.WorkOrderStatusOpen}, nil
			}

			_, err := svc.Get(ctx, 1, 10)
			Expect(err).To(MatchError(service.ErrWorkOrderNotFound))
		})
	})
})
