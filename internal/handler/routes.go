package handler

// APIV1Prefix is the base path of every dashboard endpoint.
const APIV1Prefix = "/api/v1"
