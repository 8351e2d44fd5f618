package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"

extern void geos_errorMessageHandlerCallback(char *message, void *userdata);
extern void geos_noticeMessageHandlerCallback(char *message, void *userdata);

GEOSContextHandle_t geosbridge_initContext(void *userdata) {
	GEOSContextHandle_t ctx = GEOS_init_r();
	if (ctx == NULL) {
		return NULL;
	}
	GEOSContext_setNoticeMessageHandler_r(ctx, (GEOSMessageHandler_r)geos_noticeMessageHandlerCallback, userdata);
	GEOSContext_setErrorMessageHandler_r(ctx, (GEOSMessageHandler_r)geos_errorMessageHandlerCallback, userdata);
	return ctx;
}
*/
import "C"
