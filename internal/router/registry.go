package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them. Auth endpoints live at
// the engine root (/register, /login); resource modules live under /api.
type Registry struct {
	Engine *gin.Engine
	Root   *gin.RouterGroup
	API    *gin.RouterGroup

	rootModules []Module
	apiModules  []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		Root:   engine.Group("/"),
		API:    engine.Group("/api"),
	}
}

// AddRoot registers a module on the engine root group.
func (r *Registry) AddRoot(mod Module) {
	r.rootModules = append(r.rootModules, mod)
}

// Add registers a module under /api.
func (r *Registry) Add(mod Module) {
	r.apiModules = append(r.apiModules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.rootModules {
		m.Register(r.Root)
	}
	for _, m := range r.apiModules {
		m.Register(r.API)
	}
}
