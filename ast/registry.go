package ast

import "strings"

// keywordTable maps every keyword the grammar recognizes — a kind's primary
// keyword plus its documented alternates (spec.md §4.3, §6.2) — to the Kind
// it constructs. Per spec.md §9's open question ("a conformant
// implementation should enumerate the full WKT-2 alternate set from ISO
// 19162 rather than inferring it"), this enumerates the alternates
// documented in ISO 19162 rather than only the ones the distilled spec
// happened to mention (ID/AUTHORITY, LENGTHUNIT/LENUNIT).
var keywordTable = map[string]Kind{
	"GEODCRS":       KindGeodeticCRS,
	"GEODETICCRS":   KindGeodeticCRS,
	"GEOGCRS":       KindGeodeticCRS,
	"GEOGRAPHICCRS": KindGeodeticCRS,
	"GEOGCS":        KindGeodeticCRS, // WKT-1 old-syntax spelling

	"PROJCRS":      KindProjectedCRS,
	"PROJECTEDCRS": KindProjectedCRS,

	"VERTCRS":      KindVerticalCRS,
	"VERTICALCRS":  KindVerticalCRS,

	"ENGCRS":          KindEngineeringCRS,
	"ENGINEERINGCRS":  KindEngineeringCRS,

	"TIMECRS":      KindTemporalCRS,
	"TEMPORALCRS":  KindTemporalCRS,

	"PARAMETRICCRS": KindParametricCRS,

	"IMAGECRS": KindImageCRS,

	"COMPOUNDCRS": KindCompoundCRS,
	"COMPD_CS":    KindCompoundCRS, // WKT-1 old-syntax spelling

	"BOUNDCRS": KindBoundCRS,

	"BASEGEODCRS": KindBaseGeodCRS,
	"BASEGEOGCRS": KindBaseGeodCRS,
	"BASEPROJCRS": KindBaseProjCRS,
	"BASEVERTCRS": KindBaseVertCRS,
	"BASEENGCRS":  KindBaseEngCRS,
	"BASEPARAMCRS": KindBaseParamCRS,
	"BASETIMECRS": KindBaseTimeCRS,

	"DATUM":         KindGeodeticDatum,
	"GEODETICDATUM": KindGeodeticDatum,
	"TRF":           KindGeodeticDatum,

	"VDATUM":         KindVerticalDatum,
	"VERTICALDATUM":  KindVerticalDatum,
	"VERT_DATUM":     KindVerticalDatum,

	"EDATUM":             KindEngineeringDatum,
	"ENGINEERINGDATUM":   KindEngineeringDatum,
	"ENGDATUM":           KindEngineeringDatum,

	"TDATUM":          KindTemporalDatum,
	"TIMEDATUM":       KindTemporalDatum,
	"TEMPORALDATUM":   KindTemporalDatum,

	"PDATUM":           KindParametricDatum,
	"PARAMETRICDATUM":  KindParametricDatum,

	"IDATUM":      KindImageDatum,
	"IMAGEDATUM":  KindImageDatum,

	"ELLIPSOID": KindEllipsoid,
	"SPHEROID":  KindEllipsoid,

	"PRIMEM":         KindPrimeMeridian,
	"PRIMEMERIDIAN":  KindPrimeMeridian,

	"CS": KindCS,

	"AXIS": KindAxis,
	"ORDER": KindOrder,
	"MERIDIAN": KindMeridian,
	"BEARING": KindBearing,

	"ANGLEUNIT":   KindAngleUnit,
	"ANGULARUNIT": KindAngleUnit,

	"LENGTHUNIT": KindLengthUnit,
	"LENUNIT":    KindLengthUnit,

	"SCALEUNIT": KindScaleUnit,

	"TIMEUNIT":          KindTimeUnit,
	"TEMPORALQUANTITY":  KindTimeUnit,

	"PARAMETRICUNIT": KindParametricUnit,

	"UNIT": KindUnit,

	"ID":        KindIdentifier,
	"AUTHORITY": KindIdentifier,

	"CITATION": KindCitation,
	"URI":      KindURI,
	"SCOPE":    KindScope,
	"REMARK":   KindRemark,
	"ANCHOR":   KindAnchor,

	"AREA":                    KindAreaExtent,
	"BBOX":                    KindBBoxExtent,
	"GEOGRAPHICBOUNDINGBOX":   KindBBoxExtent,
	"VERTICALEXTENT":          KindVerticalExtent,
	"TIMEEXTENT":              KindTimeExtent,
	"TIMEORIGIN":              KindTimeOrigin,

	"CONVERSION":         KindConversion,
	"DERIVINGCONVERSION": KindDerivingConversion,

	"COORDINATEOPERATION":   KindCoordOp,
	"ABRIDGEDTRANSFORMATION": KindAbridgedTransformation,
	"OPERATIONACCURACY":     KindOperationAccuracy,

	"METHOD":     KindMethod,
	"PROJECTION": KindMethod,

	"PARAMETER":     KindParameter,
	"PARAMETERFILE": KindParameterFile,
}

// canonicalKeyword is the primary (emission-preferred) keyword per Kind —
// the first spelling each kind was given above.
var canonicalKeyword = map[Kind]string{
	KindGeodeticCRS:            "GEODCRS",
	KindProjectedCRS:           "PROJCRS",
	KindVerticalCRS:            "VERTCRS",
	KindEngineeringCRS:         "ENGCRS",
	KindTemporalCRS:            "TIMECRS",
	KindParametricCRS:          "PARAMETRICCRS",
	KindImageCRS:               "IMAGECRS",
	KindCompoundCRS:            "COMPOUNDCRS",
	KindBoundCRS:               "BOUNDCRS",
	KindBaseGeodCRS:            "BASEGEODCRS",
	KindBaseProjCRS:            "BASEPROJCRS",
	KindBaseVertCRS:            "BASEVERTCRS",
	KindBaseEngCRS:             "BASEENGCRS",
	KindBaseParamCRS:           "BASEPARAMCRS",
	KindBaseTimeCRS:            "BASETIMECRS",
	KindGeodeticDatum:          "DATUM",
	KindVerticalDatum:          "VDATUM",
	KindEngineeringDatum:       "EDATUM",
	KindTemporalDatum:          "TDATUM",
	KindParametricDatum:        "PDATUM",
	KindImageDatum:             "IDATUM",
	KindEllipsoid:              "ELLIPSOID",
	KindPrimeMeridian:          "PRIMEM",
	KindCS:                     "CS",
	KindAxis:                   "AXIS",
	KindOrder:                  "ORDER",
	KindMeridian:               "MERIDIAN",
	KindBearing:                "BEARING",
	KindAngleUnit:              "ANGLEUNIT",
	KindLengthUnit:             "LENGTHUNIT",
	KindScaleUnit:              "SCALEUNIT",
	KindTimeUnit:               "TIMEUNIT",
	KindParametricUnit:         "PARAMETRICUNIT",
	KindUnit:                   "UNIT",
	KindIdentifier:             "ID",
	KindCitation:               "CITATION",
	KindURI:                    "URI",
	KindScope:                  "SCOPE",
	KindRemark:                 "REMARK",
	KindAnchor:                 "ANCHOR",
	KindAreaExtent:             "AREA",
	KindBBoxExtent:             "BBOX",
	KindVerticalExtent:         "VERTICALEXTENT",
	KindTimeExtent:             "TIMEEXTENT",
	KindTimeOrigin:             "TIMEORIGIN",
	KindConversion:             "CONVERSION",
	KindDerivingConversion:     "DERIVINGCONVERSION",
	KindCoordOp:                "COORDINATEOPERATION",
	KindAbridgedTransformation: "ABRIDGEDTRANSFORMATION",
	KindOperationAccuracy:      "OPERATIONACCURACY",
	KindMethod:                 "METHOD",
	KindParameter:              "PARAMETER",
	KindParameterFile:          "PARAMETERFILE",
}

// LookupKeyword resolves a WKT keyword (case-insensitively) to the Kind it
// constructs, the Go realization of spec.md §4.3's "keyword -> kind_tag"
// table.
func LookupKeyword(keyword string) (Kind, bool) {
	k, ok := keywordTable[strings.ToUpper(keyword)]
	return k, ok
}

// CanonicalKeyword returns the emission-preferred keyword for kind.
func CanonicalKeyword(kind Kind) string {
	return canonicalKeyword[kind]
}
