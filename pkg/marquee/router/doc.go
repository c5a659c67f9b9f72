// Package router provides the navigation model for marquee: two destinations
// (Home and Details), a back stack that never empties, and a screen runner
// with a single transition function.
//
// # Routes
//
// A Route is Home or Details with an optional movie id. Routes encode to
// URL-style paths:
//
//	home
//	details/{id}
//
// The id is escaped as one path segment. ParsePath reverses Path.
//
// # Navigator
//
// The Navigator owns the stack. It starts at [Home], NavigateToDetails pushes,
// and GoBack pops unless only Home is left, in which case it does nothing.
// Renderers subscribe for the new current route:
//
//	nav := router.NewNavigator()
//	stop := nav.Subscribe(func(r router.Route) { redraw(r) })
//	defer stop()
//
//	nav.NavigateToDetails("tt0499549") // current: details/tt0499549
//	nav.GoBack()                       // current: home
//	nav.GoBack()                       // still home
//
// # Router
//
// Screens are blocking functions that return a result. The transition
// function turns results into navigation:
//
//	r := router.New(nav)
//
//	r.Register(router.ScreenHome, func(route router.Route, resume any) (any, error) {
//	    return homeScreen(resume), nil
//	})
//
//	r.OnTransition(func(from router.Route, result any, nav *router.Navigator) bool {
//	    switch res := result.(type) {
//	    case HomeResult:
//	        if res.Quit {
//	            return false
//	        }
//	        nav.SaveResume(res.Resume)
//	        nav.NavigateToDetails(res.MovieID)
//	    case DetailsResult:
//	        nav.GoBack()
//	    }
//	    return true
//	})
//
//	err := r.Run()
//
// # Resume State
//
// Screens can leave resume state (like scroll position) on their stack entry
// with SaveResume before navigating forward. When the entry becomes current
// again, the screen function receives it back.
package router
