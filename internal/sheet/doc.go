// Package sheet turns a device spreadsheet into domain.DeviceRow values.
//
// A sheet has one device per row. The fixed columns are DeviceType,
// DeviceName, MLFB, IP and SubnetName. Any number of module slots follow as
// column pairs named ModuleNOrderNumber / ModuleNName. Module columns are
// discovered once per sheet, then each row is normalized against them.
//
// Tables are read from .xlsx/.xlsm workbooks (first sheet) or .csv files.
// In both cases the first row is the header.
package sheet
