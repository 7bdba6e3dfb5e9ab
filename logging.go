package reversi

// Service is the name of this service.
const Service = "reversi"
