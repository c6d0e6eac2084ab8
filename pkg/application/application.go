// Package application is the dashboard's composition root: it holds the
// shared collaborators and the registries modules fill in.
package application

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

// Controller is a screen mounted at Key, its base path.
type Controller interface {
	Key() string
}

type Module interface {
	Register(app Application) error
	Name() string
}

type Application interface {
	Client() *apiclient.Client
	Navigator() navigation.Navigator
	Notifier() notify.Notifier
	Storage() upload.Storage
	Logger() *logrus.Logger

	RegisterServices(services ...any)
	Service(service any) any
	RegisterControllers(controllers ...Controller)
	Controller(key string) (Controller, bool)
	Controllers() []Controller
	RegisterNavItems(items ...types.NavigationItem)
	NavItems() []types.NavigationItem
}

type ApplicationOptions struct {
	Client    *apiclient.Client
	Navigator navigation.Navigator
	Notifier  notify.Notifier
	Storage   upload.Storage
	Logger    *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewBus(logger)
	}
	return &application{
		client:      opts.Client,
		navigator:   opts.Navigator,
		notifier:    notifier,
		storage:     opts.Storage,
		logger:      logger,
		services:    make(map[reflect.Type]any),
		controllers: make(map[string]Controller),
	}
}

type application struct {
	client    *apiclient.Client
	navigator navigation.Navigator
	notifier  notify.Notifier
	storage   upload.Storage
	logger    *logrus.Logger

	mu          sync.RWMutex
	services    map[reflect.Type]any
	controllers map[string]Controller
	navItems    []types.NavigationItem
}

func (app *application) Client() *apiclient.Client { return app.client }
func (app *application) Navigator() navigation.Navigator { return app.navigator }
func (app *application) Notifier() notify.Notifier { return app.notifier }
func (app *application) Storage() upload.Storage { return app.storage }
func (app *application) Logger() *logrus.Logger { return app.logger }

// RegisterServices registers services by their pointer's element type.
func (app *application) RegisterServices(services ...any) {
	app.mu.Lock()
	defer app.mu.Unlock()
	for _, service := range services {
		app.services[reflect.TypeOf(service).Elem()] = service
	}
}

// Service retrieves a service registered for the type of service, e.g.
// app.Service(services.MemberService{}).(*services.MemberService).
func (app *application) Service(service any) any {
	app.mu.RLock()
	defer app.mu.RUnlock()
	t := reflect.TypeOf(service)
	svc, ok := app.services[t]
	if !ok {
		panic(fmt.Sprintf("service %s not found", t.Name()))
	}
	return svc
}

func (app *application) RegisterControllers(controllers ...Controller) {
	app.mu.Lock()
	defer app.mu.Unlock()
	for _, c := range controllers {
		app.controllers[c.Key()] = c
	}
}

func (app *application) Controller(key string) (Controller, bool) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	c, ok := app.controllers[key]
	return c, ok
}

// Controllers returns the registered controllers ordered by key.
func (app *application) Controllers() []Controller {
	app.mu.RLock()
	defer app.mu.RUnlock()
	out := make([]Controller, 0, len(app.controllers))
	for _, c := range app.controllers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

func (app *application) RegisterNavItems(items ...types.NavigationItem) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.navItems = append(app.navItems, items...)
}

func (app *application) NavItems() []types.NavigationItem {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return append([]types.NavigationItem(nil), app.navItems...)
}

// Load registers modules in order, stopping at the first failure.
func Load(app Application, modules ...Module) error {
	for _, m := range modules {
		if err := m.Register(app); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	return nil
}
