package cycle

// Version is the solver version reported by the HTTP service. It changes
// when a formula or convention changes the numbers Solve returns.
const Version = "1.0.0"
