package service

import (
	"ordersnapr.app/server/core/config"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/bus"
	"ordersnapr.app/server/internal/store"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	gate         *access.Gate
	publisher    bus.Publisher
	workOSCfg    config.WorkOSConfig
	dashboardURL string
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	gate *access.Gate,
	publisher bus.Publisher,
	workOSCfg config.WorkOSConfig,
	dashboardURL string,
) *Services {
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		gate:         gate,
		publisher:    publisher,
		workOSCfg:    workOSCfg,
		dashboardURL: dashboardURL,
	}
}

// Gate exposes the shared access gate for HTTP-layer feature checks.
func (s *Services) Gate() *access.Gate {
	return s.gate
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Profiles(),
		s.stores.Sessions(),
		s.stores.Workspaces(),
		s.workOSCfg,
		s.dashboardURL,
	)
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores.Organizations(), s.txRunner)
}

func (s *Services) Features() FeatureService {
	return NewFeatureService(s.stores.OrgFeatures(), s.gate.Flags(), s.publisher)
}

func (s *Services) Preferences() PreferenceService {
	return NewPreferenceService(s.stores.UserPreferences(), s.gate)
}

func (s *Services) Navigation() NavigationService {
	return NewNavigationService(s.gate, s.Preferences())
}

func (s *Services) Profiles() ProfileService {
	return NewProfileService(s.stores.Profiles())
}

func (s *Services) Invitations() InvitationService {
	return NewInvitationService(s.stores.Invitations(), s.txRunner, s.dashboardURL)
}

func (s *Services) Properties() PropertyService {
	return NewPropertyService(s.stores.Properties(), s.gate.Evaluator())
}

func (s *Services) WorkOrders() WorkOrderService {
	return NewWorkOrderService(s.stores.WorkOrders(), s.gate.Evaluator())
}

func (s *Services) Invoices() InvoiceService {
	return NewInvoiceService(s.stores.Invoices())
}

func (s *Services) Notes() NoteService {
	return NewNoteService(s.stores.Notes(), s.gate.Evaluator())
}

func (s *Services) Calendar() CalendarService {
	return NewCalendarService(s.stores.WorkOrders())
}
